package spec

import (
	"errors"
	"fmt"

	"github.com/swagspec/swagspec/specerrors"
)

// Cross-dialect attachment is a compile error wherever values keep their
// static types. This file covers the rest: values arriving through any, and
// structural rules the type system cannot carry (per-dialect type legality,
// array types without item descriptors, location-dependent parameter rules).
// All checks report specerrors values; none panic.

// AttachItems attaches an item descriptor to a dialect entity when both
// arrive erased as any. Same-dialect attachment succeeds; everything else is
// rejected with a KindMismatchError before the value enters the tree.
// Callers holding statically typed values should use SetItems instead and
// let the compiler do this check.
func AttachItems(holder, items any) error {
	switch h := holder.(type) {
	case ItemsHolder[ParamKind]:
		if it, ok := items.(*PrimitiveItems[ParamKind]); ok {
			h.SetItemsDescriptor(it)
			return nil
		}
		return &specerrors.KindMismatchError{
			Expected: KindName[ParamKind](), Actual: itemsKindName(items), Field: "items",
		}
	case ItemsHolder[HeaderKind]:
		if it, ok := items.(*PrimitiveItems[HeaderKind]); ok {
			h.SetItemsDescriptor(it)
			return nil
		}
		return &specerrors.KindMismatchError{
			Expected: KindName[HeaderKind](), Actual: itemsKindName(items), Field: "items",
		}
	case *Schema:
		if it, ok := items.(*SchemaItems); ok {
			h.SetItemsSchema(it)
			return nil
		}
		return &specerrors.KindMismatchError{
			Expected: KindName[SchemaKind](), Actual: itemsKindName(items), Field: "items",
			Message: "full schemas take a SchemaItems descriptor",
		}
	}
	return &specerrors.KindMismatchError{
		Field:   "items",
		Message: fmt.Sprintf("%T carries no item descriptor", holder),
	}
}

// itemsKindName names the dialect of an erased item descriptor for
// diagnostics.
func itemsKindName(items any) string {
	switch items.(type) {
	case *PrimitiveItems[ParamKind]:
		return KindName[ParamKind]()
	case *PrimitiveItems[HeaderKind]:
		return KindName[HeaderKind]()
	case *SchemaItems:
		return KindName[SchemaKind]()
	}
	return "unknown"
}

// validateCommon checks the dialect legality of the shared attribute block:
// the type token must belong to the dialect's admitted set, and an array
// type must come with an item descriptor (hasItems is supplied by the
// embedding entity, whose descriptor type differs per dialect).
func validateCommon[K Kind](c *SchemaCommon[K], hasItems bool) error {
	dialect := KindName[K]()
	if c.Type != "" && !legalTypes[dialect][c.Type] {
		return &specerrors.KindMismatchError{
			Expected: dialect,
			Field:    "type",
			Message:  fmt.Sprintf("type %q is not legal in the %s dialect", c.Type, dialect),
		}
	}
	if c.Type == TypeArray && !hasItems {
		return &specerrors.KindMismatchError{
			Expected: dialect,
			Field:    "items",
			Message:  `type "array" requires an item descriptor`,
		}
	}
	return nil
}

// validateCollectionFormat rejects unknown collection-format tokens with a
// dialect-tagged error. Values built in code bypass ParseCollectionFormat,
// so the wire-layer token check is repeated here.
func validateCollectionFormat[K Kind](cf CollectionFormat) error {
	if cf == "" {
		return nil
	}
	if _, err := ParseCollectionFormat(string(cf)); err != nil {
		return &specerrors.KindMismatchError{
			Expected: KindName[K](),
			Field:    "collectionFormat",
			Message:  err.Error(),
		}
	}
	return nil
}

// Validate checks the descriptor and its nested descriptors.
func (p *PrimitiveItems[K]) Validate() error {
	if err := validateCommon(&p.SchemaCommon, p.Items != nil); err != nil {
		return err
	}
	if err := validateCollectionFormat[K](p.CollectionFormat); err != nil {
		return err
	}
	if p.Items != nil {
		return p.Items.Validate()
	}
	return nil
}

// Validate checks dialect legality of the header and its item descriptors.
// CollectionMulti is rejected: headers cannot repeat.
func (h *Header) Validate() error {
	if err := validateCommon(&h.SchemaCommon, h.Items != nil); err != nil {
		return err
	}
	if err := validateCollectionFormat[HeaderKind](h.CollectionFormat); err != nil {
		return err
	}
	if h.CollectionFormat == CollectionMulti {
		return &specerrors.KindMismatchError{
			Expected: KindName[HeaderKind](),
			Field:    "collectionFormat",
			Message:  `"multi" is not legal for headers`,
		}
	}
	if h.Items != nil {
		return h.Items.Validate()
	}
	return nil
}

// Validate checks dialect legality of the non-body schema and its item
// descriptors.
func (p *ParamOtherSchema) Validate() error {
	if err := validateCommon(&p.SchemaCommon, p.Items != nil); err != nil {
		return err
	}
	if err := validateCollectionFormat[ParamKind](p.CollectionFormat); err != nil {
		return err
	}
	if p.Items != nil {
		return p.Items.Validate()
	}
	return nil
}

// Validate checks the parameter's structural invariants: a known location
// token, required=true for path parameters, and agreement between the
// location and the populated schema case (body location takes the Body case,
// every other location takes the Other case).
func (p *Parameter) Validate() error {
	if _, err := ParseLocation(string(p.In)); err != nil {
		return err
	}
	if p.In == InPath && !p.Required {
		return &specerrors.RequiredFlagError{Name: p.Name}
	}
	body, isBody := p.Schema.Body()
	other, isOther := p.Schema.Other()
	switch {
	case p.In == InBody && !isBody:
		return &specerrors.KindMismatchError{
			Expected: "body", Field: "schema",
			Message: fmt.Sprintf("parameter %q with in=body requires a body schema", p.Name),
		}
	case p.In != InBody && isBody:
		return &specerrors.KindMismatchError{
			Expected: KindName[ParamKind](), Field: "schema",
			Message: fmt.Sprintf("parameter %q with in=%s cannot carry a body schema", p.Name, p.In),
		}
	}
	if isBody {
		if s, ok := body.Value(); ok {
			return s.Validate()
		}
		return nil
	}
	if isOther {
		if other.Type == TypeFile && p.In != InFormData {
			return &specerrors.KindMismatchError{
				Expected: KindName[ParamKind](), Field: "type",
				Message: `type "file" is only legal for formData parameters`,
			}
		}
		return other.Validate()
	}
	return nil
}

// Validate checks dialect legality of the schema and recurses into its
// nested schemas. A primitive item descriptor can never be attached here;
// that mismatch does not compile.
func (s *Schema) Validate() error {
	if err := validateCommon(&s.SchemaCommon, s.Items != nil); err != nil {
		return err
	}
	if single, ok := s.Items.Single(); ok {
		if err := validateSchemaOrRef(single); err != nil {
			return err
		}
	}
	if tuple, ok := s.Items.Tuple(); ok {
		for _, it := range tuple {
			if err := validateSchemaOrRef(it); err != nil {
				return err
			}
		}
	}
	for _, prop := range s.Properties {
		if err := validateSchemaOrRef(prop); err != nil {
			return err
		}
	}
	if err := validateSchemaOrRef(s.AdditionalProperties); err != nil {
		return err
	}
	for _, sub := range s.AllOf {
		if err := validateSchemaOrRef(sub); err != nil {
			return err
		}
	}
	return nil
}

func validateSchemaOrRef(r *OrRef[Schema]) error {
	if r == nil {
		return nil
	}
	if v, ok := r.Value(); ok {
		return v.Validate()
	}
	return nil
}

// Validate checks the shared parameter list and every operation.
func (pi *PathItem) Validate() error {
	var errs []error
	if err := validateParameterList(pi.Parameters, "path item"); err != nil {
		errs = append(errs, err)
	}
	for method, op := range pi.Operations() {
		if op == nil {
			continue
		}
		if err := op.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", method, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks the operation's parameter list, parameters, and inline
// responses.
func (op *Operation) Validate() error {
	var errs []error
	if err := validateParameterList(op.Parameters, "operation"); err != nil {
		errs = append(errs, err)
	}
	for _, p := range op.Parameters {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if op.Responses != nil {
		for _, code := range op.Responses.Index().Codes() {
			r, _ := op.Responses.Index().Get(code)
			if v, ok := r.Value(); ok {
				if err := v.Validate(); err != nil {
					errs = append(errs, fmt.Errorf("response %s: %w", code, err))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// Validate checks the response's inline schema and headers.
func (r *Response) Validate() error {
	var errs []error
	if err := validateSchemaOrRef(r.Schema); err != nil {
		errs = append(errs, err)
	}
	for name, h := range r.Headers {
		if h == nil {
			continue
		}
		if err := h.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("header %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Validate walks the whole document: every path item, every reusable table
// entry, and operation identifier uniqueness across the document.
func (d *Document) Validate() error {
	var errs []error
	opIDs := make(map[string]string)
	for path, item := range d.Paths {
		if item == nil {
			continue
		}
		if err := item.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("path %s: %w", path, err))
		}
		for method, op := range item.Operations() {
			if op == nil || op.OperationID == "" {
				continue
			}
			loc := method + " " + path
			if first, dup := opIDs[op.OperationID]; dup {
				errs = append(errs, fmt.Errorf("duplicate operationId %q: %s and %s", op.OperationID, first, loc))
				continue
			}
			opIDs[op.OperationID] = loc
		}
	}
	for name, s := range d.Definitions {
		if s == nil {
			continue
		}
		if err := s.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("definition %s: %w", name, err))
		}
	}
	for name, p := range d.Parameters {
		if p == nil {
			continue
		}
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("parameter definition %s: %w", name, err))
		}
	}
	for name, r := range d.Responses {
		if r == nil {
			continue
		}
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("response definition %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// validateParameterList re-checks the uniqueness invariant for lists built
// without AddParameter.
func validateParameterList(list []*Parameter, scope string) error {
	seen := make(map[[2]string]bool, len(list))
	for _, p := range list {
		key := [2]string{p.Name, string(p.In)}
		if seen[key] {
			return &specerrors.DuplicateParameterError{Name: p.Name, In: string(p.In), Scope: scope}
		}
		seen[key] = true
	}
	return nil
}
