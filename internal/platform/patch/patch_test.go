package patch

import (
	"encoding/json"
	"testing"
)

type body struct {
	Name  Field[string] `json:"nombre"`
	Photo Field[string] `json:"foto_url"`
	Age   Field[int]    `json:"edad"`
}

func TestField_DistinguishesAbsentNullAndValue(t *testing.T) {
	var b body
	if err := json.Unmarshal([]byte(`{"nombre":"Milo","foto_url":null}`), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !b.Name.Set || b.Name.Value == nil || *b.Name.Value != "Milo" {
		t.Fatalf("expected nombre set to Milo, got %#v", b.Name)
	}
	if !b.Photo.IsNull() {
		t.Fatalf("expected foto_url null, got %#v", b.Photo)
	}
	if b.Age.Set {
		t.Fatalf("expected edad absent")
	}
}

func TestField_RejectsWrongType(t *testing.T) {
	var b body
	if err := json.Unmarshal([]byte(`{"edad":"tres"}`), &b); err == nil {
		t.Fatalf("expected error for wrong type")
	}
}

func TestField_Apply(t *testing.T) {
	name := "Luna"
	Field[string]{}.Apply(&name)
	if name != "Luna" {
		t.Fatalf("absent field must not change value")
	}
	Null[string]().Apply(&name)
	if name != "Luna" {
		t.Fatalf("null must not change a non-nullable value")
	}
	Of("Sol").Apply(&name)
	if name != "Sol" {
		t.Fatalf("expected Sol, got %s", name)
	}

	photo := new(string)
	*photo = "a.png"
	Field[string]{}.ApplyNullable(&photo)
	if photo == nil || *photo != "a.png" {
		t.Fatalf("absent field must keep nullable value")
	}
	Null[string]().ApplyNullable(&photo)
	if photo != nil {
		t.Fatalf("null must clear nullable value")
	}
	Of("b.png").ApplyNullable(&photo)
	if photo == nil || *photo != "b.png" {
		t.Fatalf("expected b.png")
	}
}
