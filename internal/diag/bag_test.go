package diag_test

import (
	"testing"

	"rustlex/internal/diag"
	"rustlex/internal/source"
)

func mkDiag(code diag.Code, sev diag.Severity, start, end uint32) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  "m",
		Primary:  source.Span{File: 0, Start: start, End: end},
	}
}

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)
	if !bag.Add(mkDiag(diag.LexBadNumber, diag.SevError, 0, 1)) {
		t.Error("first add should succeed")
	}
	if !bag.Add(mkDiag(diag.LexBadNumber, diag.SevError, 1, 2)) {
		t.Error("second add should succeed")
	}
	if bag.Add(mkDiag(diag.LexBadNumber, diag.SevError, 2, 3)) {
		t.Error("third add should be dropped")
	}
	if bag.Len() != 2 {
		t.Errorf("Len() = %d, want 2", bag.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(mkDiag(diag.LexInfo, diag.SevInfo, 0, 1))
	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("info-only bag should report neither errors nor warnings")
	}
	bag.Add(mkDiag(diag.LexInfo, diag.SevWarning, 1, 2))
	if bag.HasErrors() {
		t.Error("warning is not an error")
	}
	if !bag.HasWarnings() {
		t.Error("expected warnings")
	}
	bag.Add(mkDiag(diag.LexUnexpectedSymbol, diag.SevError, 2, 3))
	if !bag.HasErrors() {
		t.Error("expected errors")
	}
}

func TestBagSort(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(mkDiag(diag.LexBadNumber, diag.SevError, 5, 6))
	bag.Add(mkDiag(diag.LexBadEscape, diag.SevError, 1, 2))
	bag.Sort()
	items := bag.Items()
	if items[0].Primary.Start != 1 || items[1].Primary.Start != 5 {
		t.Errorf("expected diagnostics ordered by start offset, got %v then %v",
			items[0].Primary, items[1].Primary)
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(mkDiag(diag.LexBadNumber, diag.SevError, 0, 1))
	bag.Add(mkDiag(diag.LexBadNumber, diag.SevError, 0, 1))
	bag.Add(mkDiag(diag.LexBadNumber, diag.SevError, 2, 3))
	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("Len() after dedup = %d, want 2", bag.Len())
	}
}

func TestCodeID(t *testing.T) {
	if got := diag.LexUnexpectedSymbol.ID(); got != "LEX-1001" {
		t.Errorf("ID() = %q, want LEX-1001", got)
	}
	if got := diag.LexBadRawString.String(); got != "LEX_BAD_RAW_STRING" {
		t.Errorf("String() = %q", got)
	}
}
