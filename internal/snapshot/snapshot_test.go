package snapshot

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"slate/internal/task"
)

func TestEncode_EmptySequence(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil) failed: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("Encode(nil) = %q, want empty array", data)
	}
}

func TestEncode_FieldNames(t *testing.T) {
	data, err := Encode([]task.Task{{ID: "t1", Title: "Buy milk", IsCompleted: true}})
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	// The wire format is a contract: exactly these four field names.
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal encoded snapshot: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("got %d objects, want 1", len(raw))
	}
	for _, field := range []string{"id", "title", "isCompleted", "isSelected"} {
		if _, ok := raw[0][field]; !ok {
			t.Errorf("encoded task missing field %q", field)
		}
	}
	if len(raw[0]) != 4 {
		t.Errorf("encoded task has %d fields, want 4: %v", len(raw[0]), raw[0])
	}
}

func TestEncode_NoHTMLEscaping(t *testing.T) {
	data, err := Encode([]task.Task{{ID: "t1", Title: "a < b & c > d"}})
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if !strings.Contains(string(data), "a < b & c > d") {
		t.Errorf("title was escaped: %s", data)
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	for _, data := range [][]byte{nil, {}, []byte("  \n")} {
		tasks, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", data, err)
		}
		if tasks == nil {
			t.Fatalf("Decode(%q) returned nil slice", data)
		}
		if len(tasks) != 0 {
			t.Errorf("Decode(%q) = %d tasks, want 0", data, len(tasks))
		}
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	tasks, err := Decode([]byte("[]"))
	if err != nil {
		t.Fatalf("Decode([]) failed: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("Decode([]) = %v, want empty non-nil slice", tasks)
	}
}

func TestRoundTrip(t *testing.T) {
	original := []task.Task{
		{ID: "t1", Title: "Buy milk", IsCompleted: true},
		{ID: "t2", Title: "Walk dog", IsSelected: true},
		{ID: "t3", Title: "Call mom"},
	}

	data, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestDecode_RejectsMalformedJSON(t *testing.T) {
	if _, err := Decode([]byte("not json at all {{{")); err == nil {
		t.Error("expected error for malformed JSON, got nil")
	}
}

func TestDecode_RejectsWrongShape(t *testing.T) {
	cases := map[string]string{
		"object not array": `{"id":"t1","title":"x","isCompleted":false,"isSelected":false}`,
		"id not a string":  `[{"id":7,"title":"x","isCompleted":false,"isSelected":false}]`,
		"empty id":         `[{"id":"","title":"x","isCompleted":false,"isSelected":false}]`,
		"flag not a bool":  `[{"id":"t1","title":"x","isCompleted":"yes","isSelected":false}]`,
		"missing field":    `[{"id":"t1","title":"x","isCompleted":false}]`,
		"unknown field":    `[{"id":"t1","title":"x","isCompleted":false,"isSelected":false,"due":"tomorrow"}]`,
		"string array":     `["t1","t2"]`,
	}

	for name, data := range cases {
		if _, err := Decode([]byte(data)); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}

func TestDecode_RejectsDuplicateIDs(t *testing.T) {
	data := `[
		{"id":"t1","title":"one","isCompleted":false,"isSelected":false},
		{"id":"t1","title":"two","isCompleted":false,"isSelected":false}
	]`
	if _, err := Decode([]byte(data)); err == nil {
		t.Error("expected error for duplicate ids, got nil")
	}
}

func TestDecode_PreservesOrder(t *testing.T) {
	data := `[
		{"id":"c","title":"third","isCompleted":false,"isSelected":false},
		{"id":"a","title":"first","isCompleted":false,"isSelected":false},
		{"id":"b","title":"second","isCompleted":false,"isSelected":false}
	]`
	tasks, err := Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	want := []string{"c", "a", "b"}
	for i, id := range want {
		if tasks[i].ID != id {
			t.Errorf("tasks[%d].ID = %q, want %q", i, tasks[i].ID, id)
		}
	}
}
