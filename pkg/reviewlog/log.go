// Package reviewlog writes and reads review session logs so a presentation
// order can be audited or replayed later. Logs are stored either as a single
// JSON file or as a .review zip bundle with one file per page.
package reviewlog

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/C0deXG/model-evalV7/pkg/core"
)

const Version = 1

// ReviewLog captures one session's presentation order.
type ReviewLog struct {
	Version   int       `json:"version"`
	SessionID string    `json:"session_id"`
	Dataset   string    `json:"dataset"`
	Seed      int64     `json:"seed"`
	Converged bool      `json:"converged"`
	Scorer    string    `json:"scorer,omitempty"`
	CreatedAt string    `json:"created_at"`
	PageSize  int       `json:"page_size"`
	Entries   []Entry   `json:"entries,omitempty"`
	Pages     []PageRef `json:"pages"`
}

// Entry is one record in presentation order.
type Entry struct {
	Number      int         `json:"number"`
	Page        int         `json:"page"`
	SampleID    int         `json:"sample_id"`
	Path        string      `json:"path"`
	GroundTruth string      `json:"ground_truth"`
	Prediction  string      `json:"prediction"`
	Score       *core.Score `json:"score,omitempty"`
}

// PageRef summarizes one page of the log.
type PageRef struct {
	Index      int    `json:"index"`
	Items      int    `json:"items"`
	RangeLabel string `json:"range_label"`
}

const timeLayout = "2006-01-02T15:04:05-07:00"

// FromReport converts a review report into its log form.
func FromReport(report core.ReviewReport) ReviewLog {
	log := ReviewLog{
		Version:   Version,
		SessionID: report.SessionID,
		Dataset:   report.Dataset,
		Seed:      report.Seed,
		Converged: report.Converged,
		Scorer:    report.ScorerName,
		CreatedAt: time.Now().UTC().Format(timeLayout),
	}

	for _, pg := range report.Pages {
		if len(pg.Items) > log.PageSize {
			log.PageSize = len(pg.Items)
		}
		log.Pages = append(log.Pages, PageRef{
			Index:      pg.Index,
			Items:      len(pg.Items),
			RangeLabel: pg.RangeLabel,
		})
		for _, item := range pg.Items {
			log.Entries = append(log.Entries, Entry{
				Number:      item.Number,
				Page:        pg.Index,
				SampleID:    item.Record.SampleID(),
				Path:        item.Record.Path,
				GroundTruth: item.Record.GroundTruth,
				Prediction:  item.Record.Prediction,
				Score:       item.Score,
			})
		}
	}
	return log
}

// WriteJSON writes the log as an indented JSON file under logDir and returns
// the path.
func WriteJSON(logDir string, log ReviewLog) (string, error) {
	if logDir == "" {
		return "", fmt.Errorf("reviewlog: logDir is required")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(logDir, buildLogFileName(log, "json"))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return "", err
	}
	return path, nil
}

// WriteBundle writes the log as a .review zip bundle: header.json without
// entries, plus pages/<index>.json holding each page's entries.
func WriteBundle(logDir string, log ReviewLog) (string, error) {
	if logDir == "" {
		return "", fmt.Errorf("reviewlog: logDir is required")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(logDir, buildLogFileName(log, "review"))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	zipWriter := zip.NewWriter(file)
	defer zipWriter.Close()

	header := log
	header.Entries = nil
	if err := writeZipJSON(zipWriter, "header.json", header); err != nil {
		return "", err
	}

	for _, ref := range log.Pages {
		var pageEntries []Entry
		for _, entry := range log.Entries {
			if entry.Page == ref.Index {
				pageEntries = append(pageEntries, entry)
			}
		}
		name := fmt.Sprintf("pages/%d.json", ref.Index)
		if err := writeZipJSON(zipWriter, name, pageEntries); err != nil {
			return "", err
		}
	}

	return path, nil
}

// ReadJSON loads a JSON log from path.
func ReadJSON(path string) (ReviewLog, error) {
	var log ReviewLog
	file, err := os.Open(path)
	if err != nil {
		return ReviewLog{}, err
	}
	defer file.Close()
	if err := json.NewDecoder(file).Decode(&log); err != nil {
		return ReviewLog{}, err
	}
	return log, nil
}

// ReadBundle loads a .review bundle from path, reassembling entries in page
// order.
func ReadBundle(path string) (ReviewLog, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return ReviewLog{}, err
	}
	defer reader.Close()

	var log ReviewLog
	found := false
	for _, f := range reader.File {
		if f.Name != "header.json" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return ReviewLog{}, err
		}
		err = json.NewDecoder(rc).Decode(&log)
		rc.Close()
		if err != nil {
			return ReviewLog{}, err
		}
		found = true
		break
	}
	if !found {
		return ReviewLog{}, fmt.Errorf("reviewlog: %s has no header.json", path)
	}

	type pageFile struct {
		index   int
		entries []Entry
	}
	var pages []pageFile
	for _, f := range reader.File {
		if filepath.Dir(f.Name) != "pages" || filepath.Ext(f.Name) != ".json" {
			continue
		}
		var index int
		base := strings.TrimSuffix(filepath.Base(f.Name), ".json")
		if _, err := fmt.Sscanf(base, "%d", &index); err != nil {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return ReviewLog{}, err
		}
		var entries []Entry
		decodeErr := json.NewDecoder(rc).Decode(&entries)
		rc.Close()
		if decodeErr != nil {
			return ReviewLog{}, decodeErr
		}
		pages = append(pages, pageFile{index: index, entries: entries})
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].index < pages[j].index })
	for _, pg := range pages {
		log.Entries = append(log.Entries, pg.entries...)
	}
	return log, nil
}

func buildLogFileName(log ReviewLog, ext string) string {
	timestamp := time.Now().Format("2006-01-02T15-04-05")
	dataset := sanitizeName(log.Dataset)
	session := sanitizeName(log.SessionID)
	if dataset == "" {
		dataset = "dataset"
	}
	if session == "" {
		session = "session"
	}
	return fmt.Sprintf("%s_%s_%s.%s", timestamp, dataset, session, ext)
}

func writeZipJSON(writer *zip.Writer, name string, data any) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}

	payload := buf.Bytes()
	size := uint64(len(payload))
	header := &zip.FileHeader{
		Name:               name,
		Method:             zip.Store,
		UncompressedSize64: size,
		CompressedSize64:   size,
		CRC32:              crc32.ChecksumIEEE(payload),
	}
	header.SetModTime(time.Unix(0, 0))

	entry, err := writer.CreateRaw(header)
	if err != nil {
		return err
	}
	if _, err := entry.Write(payload); err != nil {
		return err
	}
	return nil
}

func sanitizeName(input string) string {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			out = append(out, r)
		}
	}
	return string(out)
}
