package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Item is the resource stored in the items collection. The id doubles as the
// Mongo document key and is always assigned on the server side.
type Item struct {
	ID          string  `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
}

// ItemDraft is the decoded body of a create or replace request. Pointer
// fields distinguish absent fields from zero values.
type ItemDraft struct {
	ID          *string  `json:"id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// ValidationError reports per-field problems with an item draft.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return "models: invalid item: " + strings.Join(parts, "; ")
}

// ParseItemDraft decodes and validates a create/replace body. Field-level
// problems, including JSON type mismatches, come back as *ValidationError;
// anything else is a plain decode error.
func ParseItemDraft(r io.Reader) (ItemDraft, error) {
	var draft ItemDraft
	if err := json.NewDecoder(r).Decode(&draft); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return ItemDraft{}, &ValidationError{Fields: map[string]string{
				typeErr.Field: fmt.Sprintf("must be of type %s", typeErr.Type),
			}}
		}
		return ItemDraft{}, err
	}
	if err := draft.Validate(); err != nil {
		return ItemDraft{}, err
	}
	return draft, nil
}

// Validate enforces the item field rules: name is required and must not be
// blank, price is required and must not be negative, and the id belongs to
// the server, not the client.
func (d ItemDraft) Validate() error {
	fields := make(map[string]string)
	if d.ID != nil {
		fields["id"] = "is assigned by the server"
	}
	if d.Name == nil {
		fields["name"] = "is required"
	} else if strings.TrimSpace(*d.Name) == "" {
		fields["name"] = "must not be empty"
	}
	if d.Price == nil {
		fields["price"] = "is required"
	} else if *d.Price < 0 {
		fields["price"] = "must not be negative"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Item materializes the draft into a storable Item under the given id.
func (d ItemDraft) Item(id string) Item {
	item := Item{ID: id}
	if d.Name != nil {
		item.Name = *d.Name
	}
	if d.Description != nil {
		item.Description = *d.Description
	}
	if d.Price != nil {
		item.Price = *d.Price
	}
	return item
}
