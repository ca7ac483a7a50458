package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pq.Error{Code: "23505"}

	if !isUniqueViolation(uniqueErr) {
		t.Error("Expected 23505 to be a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("failed to create tag: %w", uniqueErr)) {
		t.Error("Expected wrapped 23505 to be a unique violation")
	}
	if isUniqueViolation(errors.New("boom")) {
		t.Error("Expected plain error not to be a unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Error("Expected foreign key code not to be a unique violation")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	fkErr := &pq.Error{Code: "23503"}

	if !isForeignKeyViolation(fkErr) {
		t.Error("Expected 23503 to be a foreign key violation")
	}
	if !isForeignKeyViolation(fmt.Errorf("failed to create review: %w", fkErr)) {
		t.Error("Expected wrapped 23503 to be a foreign key violation")
	}
	if isForeignKeyViolation(errors.New("boom")) {
		t.Error("Expected plain error not to be a foreign key violation")
	}
	if isForeignKeyViolation(&pq.Error{Code: "23505"}) {
		t.Error("Expected unique code not to be a foreign key violation")
	}
}
