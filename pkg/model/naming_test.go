package model_test

import (
	"testing"

	"github.com/goliatone/go-dynamicform/pkg/model"
)

func TestBracketBinder(t *testing.T) {
	binder := model.BracketBinder{}
	record := model.StaticRecord{Name: "Address"}

	cases := []struct {
		attribute string
		wantName  string
		wantID    string
	}{
		{attribute: "[{}]street", wantName: "Address[{}][street]", wantID: "address-{}-street"},
		{attribute: "city", wantName: "Address[city]", wantID: "address-city"},
		{attribute: "[{}]tags[]", wantName: "Address[{}][tags][]", wantID: "address-{}-tags"},
		{attribute: "[0]geo.lat", wantName: "Address[0][geo.lat]", wantID: "address-0-geo-lat"},
	}

	for _, tc := range cases {
		t.Run(tc.attribute, func(t *testing.T) {
			if got := binder.InputName(record, tc.attribute); got != tc.wantName {
				t.Fatalf("InputName() = %q, want %q", got, tc.wantName)
			}
			if got := binder.InputID(record, tc.attribute); got != tc.wantID {
				t.Fatalf("InputID() = %q, want %q", got, tc.wantID)
			}
		})
	}
}

func TestBracketBinder_EmptyFormName(t *testing.T) {
	binder := model.BracketBinder{}
	record := model.StaticRecord{}

	if got := binder.InputName(record, model.PlaceholderAttribute("street")); got != "[{}]street" {
		t.Fatalf("InputName() = %q", got)
	}
	if got := binder.InputID(record, model.PlaceholderAttribute("street")); got != "-{}street" {
		t.Fatalf("InputID() = %q", got)
	}
}
