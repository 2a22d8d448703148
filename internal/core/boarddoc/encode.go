package boarddoc

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const indentUnit = "  "

// Encode serializes the document as JSON in key order, indented by two spaces,
// followed by a newline.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeNode(&buf, d.root, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeNode(buf *bytes.Buffer, n *yaml.Node, depth int) error {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		return writeObject(buf, n, depth)
	case yaml.SequenceNode:
		return writeArray(buf, n, depth)
	case yaml.ScalarNode:
		return writeScalar(buf, n)
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeNode(buf, n.Content[0], depth)
	default:
		return zerr.With(zerr.New("unsupported node"), "kind", kindName(n.Kind))
	}
}

func writeObject(buf *bytes.Buffer, n *yaml.Node, depth int) error {
	if len(n.Content) == 0 {
		buf.WriteString("{}")
		return nil
	}

	buf.WriteString("{\n")
	for i := 0; i+1 < len(n.Content); i += 2 {
		writeIndent(buf, depth+1)
		writeString(buf, n.Content[i].Value)
		buf.WriteString(": ")
		if err := writeNode(buf, n.Content[i+1], depth+1); err != nil {
			return err
		}
		if i+2 < len(n.Content) {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	writeIndent(buf, depth)
	buf.WriteByte('}')
	return nil
}

func writeArray(buf *bytes.Buffer, n *yaml.Node, depth int) error {
	if len(n.Content) == 0 {
		buf.WriteString("[]")
		return nil
	}

	buf.WriteString("[\n")
	for i, item := range n.Content {
		writeIndent(buf, depth+1)
		if err := writeNode(buf, item, depth+1); err != nil {
			return err
		}
		if i+1 < len(n.Content) {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	writeIndent(buf, depth)
	buf.WriteByte(']')
	return nil
}

func writeScalar(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.ShortTag() {
	case tagNull:
		buf.WriteString("null")
	case tagBool:
		b, err := strconv.ParseBool(strings.ToLower(n.Value))
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid boolean"), "value", n.Value)
		}
		buf.WriteString(strconv.FormatBool(b))
	case tagInt:
		v, err := strconv.ParseInt(strings.ReplaceAll(n.Value, "_", ""), 0, 64)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid integer"), "value", n.Value)
		}
		buf.WriteString(strconv.FormatInt(v, 10))
	case tagFloat:
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid number"), "value", n.Value)
		}
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		writeString(buf, n.Value)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for range depth {
		buf.WriteString(indentUnit)
	}
}
