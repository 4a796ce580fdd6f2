// Package loader reads scan-execution records from the JSON envelope
// the scanning platform's OData endpoint produces. Input-file problems
// are loader errors; record-level validation belongs to the report
// normalizer.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/locvowork/scaninsight/internal/model"
)

// envelope is the OData response wrapper: {"value": [record...]}.
type envelope struct {
	Value []model.ScanRecord `json:"value"`
}

// Load reads the scan data file. Missing or empty files are reported
// distinctly from JSON syntax errors.
func Load(path string) ([]model.ScanRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("scan data file not found: %s", path)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("scan data file is empty: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scan data file %s: %w", path, err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Read decodes the scan envelope from a stream.
func Read(r io.Reader) ([]model.ScanRecord, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode scan data: %w", err)
	}
	if env.Value == nil {
		return nil, fmt.Errorf("scan data has no value array")
	}
	return env.Value, nil
}
