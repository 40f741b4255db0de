package dictionary

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
	"github.com/vmihailenco/msgpack/v5"
)

// Load reads the dictionary at path, picking the decoder from its format.
func Load(path string) (*Dictionary, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var d *Dictionary
	switch format {
	case FormatJSON:
		d, err = loadJSON(path)
	case FormatMsgpack:
		d, err = loadMsgpack(path)
	default:
		err = fmt.Errorf("unsupported format for %s", path)
	}
	if err != nil {
		return nil, err
	}

	log.Debugf("Loaded %s: %d entries in %v", path, d.Len(), time.Since(start))
	return d, nil
}

func loadJSON(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s is not valid JSON", path)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%s does not hold a JSON object", path)
	}

	d := New(path)
	skipped := 0
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			skipped++
			return true
		}
		d.Set(key.String(), value.String())
		return true
	})
	if skipped > 0 {
		log.Warnf("Skipped %d entries with non-string translations in %s", skipped, path)
	}
	return d, nil
}

func loadMsgpack(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	dec := msgpack.NewDecoder(bufio.NewReader(file))
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, fmt.Errorf("failed to read map header of %s: %w", path, err)
	}

	d := New(path)
	for i := 0; i < n; i++ {
		outline, err := dec.DecodeString()
		if err != nil {
			return nil, fmt.Errorf("failed to read outline %d of %s: %w", i, path, err)
		}
		translation, err := dec.DecodeString()
		if err != nil {
			return nil, fmt.Errorf("failed to read translation of %s in %s: %w", outline, path, err)
		}
		d.Set(outline, translation)
	}
	return d, nil
}

// Compile converts the dictionary at src into a msgpack dictionary at dst.
func Compile(src, dst string) (int, error) {
	d, err := Load(src)
	if err != nil {
		return 0, err
	}

	file, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dst, err)
	}
	w := bufio.NewWriter(file)
	if err := d.WriteMsgpack(w); err != nil {
		file.Close()
		return 0, err
	}
	if err := errors.Join(w.Flush(), file.Close()); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return d.Len(), nil
}
