package parser

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/models"
)

func TestParseTransactions(t *testing.T) {
	lines := []string{
		testTxnHeader,
		"2025-06-10;09:15;Butik Syd;1234567890;Anna Andersson;0701234567;;A1;50,00",
		"2025-06-11;12:30;Butik Syd;1234567890;Bertil Berg;0707654321;Lunch;;30,00",
		"2025-06-12;18:45:02;Butik Nord;1234567890;Cecilia Carlsson;0709998877;;;20,00",
	}

	txns, rowErrs, err := ParseTransactions(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrs)
	}
	if len(txns) != 3 {
		t.Fatalf("transactions: got %d, want 3", len(txns))
	}

	// Input order preserved exactly.
	names := []string{"Anna Andersson", "Bertil Berg", "Cecilia Carlsson"}
	for i, want := range names {
		if txns[i].Name != want {
			t.Errorf("txn[%d].Name: got %q, want %q", i, txns[i].Name, want)
		}
	}

	if !txns[0].Amount.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("txn[0].Amount: got %s, want 50.00", txns[0].Amount)
	}
	if txns[0].Message != "" || txns[0].Reference != "A1" {
		t.Errorf("txn[0] optional fields: message %q, reference %q", txns[0].Message, txns[0].Reference)
	}
	if txns[1].Message != "Lunch" || txns[1].Reference != "" {
		t.Errorf("txn[1] optional fields: message %q, reference %q", txns[1].Message, txns[1].Reference)
	}
	if txns[2].Time != "18:45:02" {
		t.Errorf("txn[2].Time: got %q, want seconds accepted", txns[2].Time)
	}
}

func TestParseTransactions_CollectsAllRowErrors(t *testing.T) {
	lines := []string{
		testTxnHeader,
		"2025-06-10;09:15;Butik;123;Anna;070;;;50,00",
		"inte-ett-datum;09:15;Butik;123;Bertil;070;;;30,00",
		"2025-06-11;12:30;Butik;123;Cecilia;070;;;20.00",
		"2025-06-12;12:30;Butik;123;David",
		"2025-06-12;99x99;Butik;123;Erik;070;;;10,00",
	}

	txns, rowErrs, err := ParseTransactions(lines)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}

	// Every defective row is reported, not just the first, and the good
	// rows still come back.
	if len(rowErrs) != 4 {
		t.Fatalf("row errors: got %d, want 4: %v", len(rowErrs), rowErrs)
	}
	if len(txns) != 1 {
		t.Fatalf("parsed transactions: got %d, want 1", len(txns))
	}

	wantRows := []int{2, 3, 4, 5}
	for i, want := range wantRows {
		if rowErrs[i].Row != want {
			t.Errorf("rowErrs[%d].Row: got %d, want %d", i, rowErrs[i].Row, want)
		}
	}
	if rowErrs[0].Field != models.ColDate {
		t.Errorf("rowErrs[0].Field: got %q, want DATUM", rowErrs[0].Field)
	}
	if rowErrs[1].Field != models.ColAmount {
		t.Errorf("rowErrs[1].Field: got %q, want BELOPP", rowErrs[1].Field)
	}
	if rowErrs[3].Field != models.ColTime {
		t.Errorf("rowErrs[3].Field: got %q, want TID", rowErrs[3].Field)
	}
}

func TestParseTransactions_MissingRequiredColumn(t *testing.T) {
	lines := []string{
		"DATUM;TID;NAMN;BELOPP",
		"2025-06-10;09:15;Anna;50,00",
	}
	_, _, err := ParseTransactions(lines)
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *FormatError, got %v", err)
	}
}
