package codec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"

	"github.com/dshills/ttedit/internal/timetable"
)

const envelope = `{
  "status": "ok",
  "data": {
    "timetable": {
      "id": "tt-1",
      "schedule": {
        "Monday": {
          "10:00": [
            {"subject": "Data Structures", "teacher": "t1", "room": "R101",
             "branch": "cs", "section": "A", "type": "theory", "students": 60}
          ]
        }
      }
    }
  }
}`

func wantSchedule() timetable.Schedule {
	return timetable.Schedule{"Monday": {"10:00": {{
		Subject:  "Data Structures",
		Teacher:  "t1",
		Room:     "R101",
		Branch:   "cs",
		Section:  "A",
		Type:     timetable.Theory,
		Students: 60,
	}}}}
}

func TestDecode(t *testing.T) {
	got, err := Decode([]byte(envelope), "data.timetable.schedule")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(wantSchedule(), got); diff != "" {
		t.Errorf("schedule mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeWholeDocument(t *testing.T) {
	data, err := Encode(wantSchedule())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data, "")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(wantSchedule(), got); diff != "" {
		t.Errorf("schedule mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		path    string
		wantErr error
	}{
		{"invalid json", `{"Monday":`, "", ErrInvalidJSON},
		{"missing path", envelope, "data.missing", ErrPathNotFound},
		{"bad session type", `{"Monday":{"10:00":[{"type":"lab"}]}}`, "", timetable.ErrUnknownSessionType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeNull(t *testing.T) {
	got, err := Decode([]byte(`null`), "")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Decode(null) = %v, want empty schedule", got)
	}
}

func TestEncodeIntoPreservesEnvelope(t *testing.T) {
	updated := wantSchedule()
	updated["Tuesday"] = timetable.Slots{"11:00": {{Subject: "Algorithms", Type: timetable.Tutorial}}}

	doc, err := EncodeInto([]byte(envelope), "data.timetable.schedule", updated)
	if err != nil {
		t.Fatalf("EncodeInto: %v", err)
	}

	if got := gjson.GetBytes(doc, "data.timetable.id").String(); got != "tt-1" {
		t.Errorf("envelope id = %q, want %q", got, "tt-1")
	}
	if got := gjson.GetBytes(doc, "status").String(); got != "ok" {
		t.Errorf("envelope status = %q, want %q", got, "ok")
	}

	back, err := Decode(doc, "data.timetable.schedule")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(updated, back); diff != "" {
		t.Errorf("schedule mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeIntoEmptyDocument(t *testing.T) {
	doc, err := EncodeInto(nil, "timetable", wantSchedule())
	if err != nil {
		t.Fatalf("EncodeInto: %v", err)
	}
	if !gjson.GetBytes(doc, "timetable.Monday").Exists() {
		t.Errorf("schedule not written: %s", doc)
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "envelope.json")
	if err := os.WriteFile(path, []byte(envelope), 0o644); err != nil {
		t.Fatal(err)
	}

	schedule, err := ReadFile(path, "data.timetable.schedule")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	delete(schedule, "Monday")
	if err := WriteFile(path, "data.timetable.schedule", schedule); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if gjson.GetBytes(data, "data.timetable.schedule.Monday").Exists() {
		t.Error("Monday should have been removed")
	}
	if gjson.GetBytes(data, "data.timetable.id").String() != "tt-1" {
		t.Error("envelope lost on write")
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.json"), ""); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile(missing) error = %v, want ErrNotExist", err)
	}
}
