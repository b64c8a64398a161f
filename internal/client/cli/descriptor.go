package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/geoattend/internal/biometric"
)

// loadDescriptor reads a face descriptor produced by the capture pipeline.
// Files ending in .cbor hold the server's binary encoding; anything else is
// read as a JSON array of numbers.
func loadDescriptor(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var d biometric.Descriptor
	if strings.EqualFold(filepath.Ext(path), ".cbor") {
		d, err = biometric.Decode(data)
	} else {
		err = json.Unmarshal(data, &d)
	}
	if err != nil {
		return nil, fmt.Errorf("descriptor %s: %w", path, err)
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("descriptor %s: %w", path, err)
	}
	return d, nil
}
