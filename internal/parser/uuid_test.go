package parser

import (
	"testing"

	"github.com/kicad-visualizer/backend/internal/sexp"
)

const testUUID = "f1a2b3c4-d5e6-47a8-9b0c-1d2e3f405061"

func TestDecodeUUID(t *testing.T) {
	id, err := DecodeUUID(mustParse(t, `(uuid "`+testUUID+`")`))
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if id != testUUID {
		t.Errorf("Expected %s, got %s", testUUID, id)
	}
}

func TestDecodeUUIDBareSymbol(t *testing.T) {
	id, err := DecodeUUID(mustParse(t, `(uuid `+testUUID+`)`))
	if err != nil {
		t.Fatalf("Failed to decode bare symbol form: %v", err)
	}
	if id != testUUID {
		t.Errorf("Expected %s, got %s", testUUID, id)
	}
}

func TestDecodeUUIDErrors(t *testing.T) {
	_, err := DecodeUUID(mustParse(t, `(uuid "not-a-uuid")`))
	wantKind(t, err, ErrInvalidUUID)

	_, err = DecodeUUID(mustParse(t, `(uuid)`))
	wantKind(t, err, ErrInvalidShape)

	_, err = DecodeUUID(mustParse(t, `(uuid "`+testUUID+`" extra)`))
	wantKind(t, err, ErrInvalidShape)
}

func TestEncodeUUID(t *testing.T) {
	got := sexp.Format(EncodeUUID(testUUID))
	if got != `(uuid "`+testUUID+`")` {
		t.Errorf("Unexpected encoding: %s", got)
	}
}
