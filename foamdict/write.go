package foamdict

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Header is the FoamFile metadata block written at the top of every
// OpenFOAM dictionary file.
type Header struct {
	Version  string
	Format   string
	Class    string
	Location string
	Object   string
}

// DefaultHeader returns the stock ascii dictionary header for a file
// at the given location (e.g. "system") with the given object name.
func DefaultHeader(location, object string) Header {
	return Header{
		Version:  "2.0",
		Format:   "ascii",
		Class:    "dictionary",
		Location: location,
		Object:   object,
	}
}

// Write renders hdr and d to w in the OpenFOAM dictionary text format.
// Output is deterministic: the same tree produces identical bytes.
func Write(w io.Writer, hdr Header, d *Dict) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw, hdr)
	for _, k := range d.keys {
		if err := writeEntry(bw, k, d.vals[k], 0); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeHeader(bw *bufio.Writer, hdr Header) {
	fmt.Fprintf(bw, "FoamFile\n{\n")
	fmt.Fprintf(bw, "    version     %s;\n", hdr.Version)
	fmt.Fprintf(bw, "    format      %s;\n", hdr.Format)
	fmt.Fprintf(bw, "    class       %s;\n", hdr.Class)
	fmt.Fprintf(bw, "    location    \"%s\";\n", hdr.Location)
	fmt.Fprintf(bw, "    object      %s;\n", hdr.Object)
	fmt.Fprintf(bw, "}\n\n")
}

func writeEntry(bw *bufio.Writer, key string, v interface{}, depth int) error {
	ind := strings.Repeat("    ", depth)
	if sub, ok := v.(*Dict); ok {
		fmt.Fprintf(bw, "%s%s\n%s{\n", ind, key, ind)
		for _, k := range sub.keys {
			if err := writeEntry(bw, k, sub.vals[k], depth+1); err != nil {
				return err
			}
		}
		fmt.Fprintf(bw, "%s}\n", ind)
		return nil
	}
	s, err := formatValue(v)
	if err != nil {
		return fmt.Errorf("entry %q: %w", key, err)
	}
	if strings.HasPrefix(key, "#") {
		// Directives such as #include take no terminating semicolon.
		fmt.Fprintf(bw, "%s%s %s\n", ind, key, s)
		return nil
	}
	fmt.Fprintf(bw, "%s%s %s;\n", ind, key, s)
	return nil
}

func formatValue(v interface{}) (string, error) {
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case string:
		return val, nil
	case String:
		return `"` + string(val) + `"`, nil
	case List:
		parts := make([]string, len(val))
		for i, e := range val {
			s, err := formatValue(e)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "( " + strings.Join(parts, " ") + " )", nil
	case *Dict:
		// Dicts inside list values render inline.
		var sb strings.Builder
		sb.WriteString("{ ")
		for _, k := range val.keys {
			s, err := formatValue(val.vals[k])
			if err != nil {
				return "", err
			}
			sb.WriteString(k + " " + s + "; ")
		}
		sb.WriteString("}")
		return sb.String(), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
