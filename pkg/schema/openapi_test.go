package schema_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynamicform/pkg/schema"
)

const customerDoc = `openapi: 3.0.3
info:
  title: Customers
  version: 1.0.0
paths: {}
components:
  schemas:
    Timestamps:
      type: object
      properties:
        created_at:
          type: string
    Address:
      allOf:
        - $ref: '#/components/schemas/Timestamps'
        - type: object
          properties:
            street:
              type: string
            city:
              type: string
    Customer:
      type: object
      properties:
        name:
          type: string
        addresses:
          type: array
          items:
            $ref: '#/components/schemas/Address'
        phones:
          type: array
          items:
            type: string
`

func TestFieldsFromOpenAPI_ArrayItems(t *testing.T) {
	got, err := schema.FieldsFromOpenAPI(context.Background(), []byte(customerDoc), "Customer", "addresses")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if diff := cmp.Diff([]string{"city", "created_at", "street"}, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldsFromOpenAPI_ComponentProperties(t *testing.T) {
	got, err := schema.FieldsFromOpenAPI(context.Background(), []byte(customerDoc), "Customer", "")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if diff := cmp.Diff([]string{"addresses", "name", "phones"}, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldsFromOpenAPI_Errors(t *testing.T) {
	ctx := context.Background()

	if _, err := schema.FieldsFromOpenAPI(ctx, []byte(customerDoc), "Customer", "name"); !errors.Is(err, schema.ErrNotArray) {
		t.Fatalf("expected ErrNotArray, got %v", err)
	}
	if _, err := schema.FieldsFromOpenAPI(ctx, []byte(customerDoc), "Customer", "phones"); err == nil {
		t.Fatalf("expected error for array of scalars")
	}
	if _, err := schema.FieldsFromOpenAPI(ctx, []byte(customerDoc), "Customer", "missing"); err == nil {
		t.Fatalf("expected error for missing property")
	}
	if _, err := schema.FieldsFromOpenAPI(ctx, []byte(customerDoc), "Order", ""); err == nil {
		t.Fatalf("expected error for missing component")
	}
	if _, err := schema.FieldsFromOpenAPI(ctx, nil, "Customer", ""); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := schema.FieldsFromOpenAPI(ctx, []byte(customerDoc), " ", ""); err == nil {
		t.Fatalf("expected error for empty component")
	}
}

func TestFieldsFromOpenAPI_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := schema.FieldsFromOpenAPI(ctx, []byte(customerDoc), "Customer", ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
