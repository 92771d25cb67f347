package response

import (
	"testing"
	"time"

	"paystand_bridge/internal/domain/entities"
)

func TestFromCustomer(t *testing.T) {
	now := time.Now().UTC()
	got := FromCustomer(entities.Customer{ID: "cus_1", Name: "Acme", Email: "a@acme.test", BankID: "ba_1", CreatedAt: now})
	if got.ID != "cus_1" || got.Name != "Acme" || got.BankID != "ba_1" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected mapping: %+v", got)
	}
}

func TestFromPayer(t *testing.T) {
	got := FromPayer(entities.Payer{ID: "pyr_1", Status: "active", Bank: map[string]interface{}{"id": "ba_2"}})
	if got.ID != "pyr_1" || got.Status != "active" || got.Bank["id"] != "ba_2" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
}

func TestEnvelope(t *testing.T) {
	env := Envelope("payerData", map[string]interface{}{"id": "pyr_1"})
	inner, ok := env["payerData"].(map[string]interface{})
	if !ok || inner["id"] != "pyr_1" || len(env) != 1 {
		t.Fatalf("unexpected envelope: %#v", env)
	}
}
