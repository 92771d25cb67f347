package usecase

import "testing"

func TestFieldRenames_Apply(t *testing.T) {
	renames := FieldRenames{"namec": "name"}

	t.Run("alias moved to canonical name", func(t *testing.T) {
		in := map[string]interface{}{"namec": "Acme Co", "email": "ops@acme.test"}
		out := renames.Apply(in)

		if out["name"] != "Acme Co" {
			t.Fatalf("expected name to be renamed, got %+v", out)
		}
		if _, ok := out["namec"]; ok {
			t.Fatalf("alias must not be forwarded: %+v", out)
		}
		if out["email"] != "ops@acme.test" {
			t.Fatalf("other fields must be kept: %+v", out)
		}
		if _, ok := in["name"]; ok {
			t.Fatalf("input must not be mutated: %+v", in)
		}
	})

	t.Run("alias wins over canonical", func(t *testing.T) {
		out := renames.Apply(map[string]interface{}{"namec": "Alias", "name": "Canonical"})
		if out["name"] != "Alias" || len(out) != 1 {
			t.Fatalf("unexpected result: %+v", out)
		}
	})

	t.Run("applying twice is stable", func(t *testing.T) {
		once := renames.Apply(map[string]interface{}{"namec": "Acme Co"})
		twice := renames.Apply(once)
		if twice["name"] != "Acme Co" || len(twice) != 1 {
			t.Fatalf("unexpected result: %+v", twice)
		}
	})

	t.Run("nil table copies body", func(t *testing.T) {
		var none FieldRenames
		out := none.Apply(map[string]interface{}{"bankId": "ba_1"})
		if out["bankId"] != "ba_1" {
			t.Fatalf("unexpected result: %+v", out)
		}
	})
}

func TestResolvePath(t *testing.T) {
	path, err := ResolvePath("/banks/{bankId}/drop", map[string]interface{}{"bankId": "ba 1/x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/banks/ba%201%2Fx/drop" {
		t.Fatalf("unexpected path: %s", path)
	}

	if _, err := ResolvePath("/payers/{payer_id}/banks", map[string]interface{}{"payer_id": "  "}); err == nil {
		t.Fatalf("expected error for blank param")
	}

	path, err = ResolvePath("/payers", nil)
	if err != nil || path != "/payers" {
		t.Fatalf("expected static path, got %s err=%v", path, err)
	}
}
