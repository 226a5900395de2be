// Package dataset loads evaluation records from the payloads the review
// tool consumes: a JSON object with a results array, a bare JSON array, or
// a JSONL stream of records.
package dataset

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/C0deXG/model-evalV7/pkg/core"
)

type FileDataset struct {
	Path     string
	NameHint string
}

func NewFileDataset(path string) *FileDataset {
	return &FileDataset{Path: path}
}

func (d *FileDataset) Name() string {
	if d.NameHint != "" {
		return d.NameHint
	}
	return filepath.Base(d.Path)
}

func (d *FileDataset) Len(ctx context.Context) (int, error) {
	format, err := detectFormat(d.Path)
	if err != nil {
		return 0, err
	}

	switch format {
	case "json":
		records, err := loadJSONRecords(d.Path)
		if err != nil {
			return 0, err
		}
		return len(records), nil
	case "jsonl":
		return countJSONLLines(ctx, d.Path)
	default:
		return 0, errors.New("dataset: unsupported format")
	}
}

func (d *FileDataset) Records(ctx context.Context) (<-chan core.EvaluationRecord, <-chan error) {
	recordCh := make(chan core.EvaluationRecord)
	errCh := make(chan error, 1)

	go func() {
		defer close(recordCh)
		defer close(errCh)

		format, err := detectFormat(d.Path)
		if err != nil {
			errCh <- err
			return
		}

		switch format {
		case "json":
			records, err := loadJSONRecords(d.Path)
			if err != nil {
				errCh <- err
				return
			}
			for _, record := range records {
				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				case recordCh <- record:
				}
			}
		case "jsonl":
			err = streamJSONL(ctx, d.Path, recordCh)
			if err != nil {
				errCh <- err
			}
		default:
			errCh <- errors.New("dataset: unsupported format")
		}
	}()

	return recordCh, errCh
}

// Load reads every record into memory in input order. The reorder pipeline
// needs the whole sequence at once, so this is the common entry point.
func (d *FileDataset) Load(ctx context.Context) ([]core.EvaluationRecord, error) {
	recordCh, errCh := d.Records(ctx)
	var records []core.EvaluationRecord
	for record := range recordCh {
		records = append(records, record)
	}
	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}

func detectFormat(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jsonl":
		return "jsonl", nil
	case ".json":
		return "json", nil
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(string(b)) == "" {
			continue
		}
		if b == '{' || b == '[' {
			return "json", nil
		}
		return "", errors.New("dataset: unsupported format")
	}
}

// resultsPayload is the envelope the external evaluation pipeline produces.
type resultsPayload struct {
	Results []core.EvaluationRecord `json:"results"`
}

func loadJSONRecords(path string) ([]core.EvaluationRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, errors.New("dataset: empty file")
	}

	if trimmed[0] == '[' {
		var records []core.EvaluationRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var payload resultsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	if payload.Results == nil {
		return nil, errors.New("dataset: missing results field")
	}
	return payload.Results, nil
}

func streamJSONL(ctx context.Context, path string, out chan<- core.EvaluationRecord) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var record core.EvaluationRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- record:
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return nil
}

func countJSONLLines(ctx context.Context, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	count := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if len(strings.TrimSpace(scanner.Text())) == 0 {
			continue
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return count, nil
}
