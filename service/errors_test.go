package service

import (
	"fmt"
	"testing"
)

func TestTemporary(t *testing.T) {
	if Temporary(fmt.Errorf("plain")) {
		t.Error("plain error must not be temporary")
	}
	if !Temporary(MakeTemporary(fmt.Errorf("transient"))) {
		t.Error("marked error must be temporary")
	}
	if !Temporary(fmt.Errorf("wrapped: %w", MakeTemporary(fmt.Errorf("transient")))) {
		t.Error("wrapped marked error must be temporary")
	}
	if Temporary(MakeFatal(fmt.Errorf("fatal"))) {
		t.Error("fatal error must not be temporary")
	}
	if !Fatal(MakeFatal(fmt.Errorf("fatal"))) {
		t.Error("marked error must be fatal")
	}
}

func TestMergeErrors(t *testing.T) {
	tmpErr := MakeTemporary(fmt.Errorf("transient"))

	if err := MergeErrors(false, tmpErr, nil); err != nil {
		t.Errorf("expected nil (priority to no error), got %v", err)
	}
	if err := MergeErrors(false, nil, tmpErr); err == nil {
		t.Error("expected an error, got nil")
	} else if !Temporary(err) {
		t.Errorf("expected a temporary error, got %v", err)
	}
	if err := MergeErrors(true, tmpErr, nil); err == nil {
		t.Error("expected the error to be kept (priority to error)")
	}
	if err := MergeErrors(false, fmt.Errorf("first"), fmt.Errorf("second")); err == nil {
		t.Error("expected a merged error, got nil")
	}
}
