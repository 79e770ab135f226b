package spec

// This file defines the accessor protocol for the attributes shared across
// schema dialects. Resolution follows a dispatch-then-default rule, selected
// statically per (entity type, attribute) pair:
//
//  1. The default path: every accessor pair below is defined once on
//     *SchemaCommon and promoted by embedding into Schema, ParamOtherSchema,
//     Header, and PrimitiveItems. Reading or writing goes straight through
//     the embedded block.
//  2. The override path: an entity whose attribute has custom semantics
//     shadows the promoted pair. Overrides are all-or-nothing — an entity
//     shadows both the getter and the setter of an attribute or neither, so
//     reads and writes never take different routes.
//
// The item descriptor is the attribute whose type differs per dialect, so it
// is not part of CommonProjection. The parameter and header dialects share
// the ItemsHolder accessors below; Schema provides its own bespoke pair over
// SchemaItems (see schema.go).

// CommonProjection is the uniform read/write surface over the shared
// attribute block, implemented by every dialect entity. Accessors operate on
// the entity's embedded SchemaCommon unless the entity overrides them.
type CommonProjection interface {
	GetType() DataType
	SetType(DataType)
	GetFormat() string
	SetFormat(string)
	GetDefault() any
	SetDefault(any)
	GetMaximum() *float64
	SetMaximum(*float64)
	GetExclusiveMaximum() bool
	SetExclusiveMaximum(bool)
	GetMinimum() *float64
	SetMinimum(*float64)
	GetExclusiveMinimum() bool
	SetExclusiveMinimum(bool)
	GetMaxLength() *int
	SetMaxLength(*int)
	GetMinLength() *int
	SetMinLength(*int)
	GetPattern() string
	SetPattern(string)
	GetMaxItems() *int
	SetMaxItems(*int)
	GetMinItems() *int
	SetMinItems(*int)
	GetUniqueItems() bool
	SetUniqueItems(bool)
	GetEnum() []any
	SetEnum([]any)
	GetMultipleOf() *float64
	SetMultipleOf(*float64)
}

// ItemsHolder is implemented by entities of the primitive dialects that
// carry an array item descriptor. The K parameter ties holder and descriptor
// to one dialect: a descriptor built for headers does not attach to a
// parameter, and no descriptor attaches to a full schema.
type ItemsHolder[K PrimitiveKind] interface {
	// ItemsDescriptor returns the current descriptor, or nil.
	ItemsDescriptor() *PrimitiveItems[K]
	// SetItemsDescriptor replaces the descriptor.
	SetItemsDescriptor(*PrimitiveItems[K])
}

// ItemsOf reads the item descriptor of any primitive-dialect entity.
func ItemsOf[K PrimitiveKind](h ItemsHolder[K]) *PrimitiveItems[K] {
	return h.ItemsDescriptor()
}

// SetItems attaches an item descriptor to any primitive-dialect entity of
// the same dialect.
func SetItems[K PrimitiveKind](h ItemsHolder[K], items *PrimitiveItems[K]) {
	h.SetItemsDescriptor(items)
}

// Compile-time verification that every dialect entity exposes the full
// projection, and that the primitive dialects expose the items accessors.
var (
	_ CommonProjection = (*Schema)(nil)
	_ CommonProjection = (*ParamOtherSchema)(nil)
	_ CommonProjection = (*Header)(nil)
	_ CommonProjection = (*PrimitiveItems[ParamKind])(nil)
	_ CommonProjection = (*PrimitiveItems[HeaderKind])(nil)

	_ ItemsHolder[ParamKind]  = (*ParamOtherSchema)(nil)
	_ ItemsHolder[HeaderKind] = (*Header)(nil)
	_ ItemsHolder[ParamKind]  = (*PrimitiveItems[ParamKind])(nil)
	_ ItemsHolder[HeaderKind] = (*PrimitiveItems[HeaderKind])(nil)
)

// GetType returns the data type.
func (c *SchemaCommon[K]) GetType() DataType { return c.Type }

// SetType sets the data type.
func (c *SchemaCommon[K]) SetType(t DataType) { c.Type = t }

// GetFormat returns the format modifier.
func (c *SchemaCommon[K]) GetFormat() string { return c.Format }

// SetFormat sets the format modifier.
func (c *SchemaCommon[K]) SetFormat(f string) { c.Format = f }

// GetDefault returns the default value.
func (c *SchemaCommon[K]) GetDefault() any { return c.Default }

// SetDefault sets the default value.
func (c *SchemaCommon[K]) SetDefault(v any) { c.Default = v }

// GetMaximum returns the numeric upper bound.
func (c *SchemaCommon[K]) GetMaximum() *float64 { return c.Maximum }

// SetMaximum sets the numeric upper bound.
func (c *SchemaCommon[K]) SetMaximum(v *float64) { c.Maximum = v }

// GetExclusiveMaximum reports whether the upper bound is exclusive.
func (c *SchemaCommon[K]) GetExclusiveMaximum() bool { return c.ExclusiveMaximum }

// SetExclusiveMaximum sets whether the upper bound is exclusive.
func (c *SchemaCommon[K]) SetExclusiveMaximum(v bool) { c.ExclusiveMaximum = v }

// GetMinimum returns the numeric lower bound.
func (c *SchemaCommon[K]) GetMinimum() *float64 { return c.Minimum }

// SetMinimum sets the numeric lower bound.
func (c *SchemaCommon[K]) SetMinimum(v *float64) { c.Minimum = v }

// GetExclusiveMinimum reports whether the lower bound is exclusive.
func (c *SchemaCommon[K]) GetExclusiveMinimum() bool { return c.ExclusiveMinimum }

// SetExclusiveMinimum sets whether the lower bound is exclusive.
func (c *SchemaCommon[K]) SetExclusiveMinimum(v bool) { c.ExclusiveMinimum = v }

// GetMaxLength returns the string length upper bound.
func (c *SchemaCommon[K]) GetMaxLength() *int { return c.MaxLength }

// SetMaxLength sets the string length upper bound.
func (c *SchemaCommon[K]) SetMaxLength(v *int) { c.MaxLength = v }

// GetMinLength returns the string length lower bound.
func (c *SchemaCommon[K]) GetMinLength() *int { return c.MinLength }

// SetMinLength sets the string length lower bound.
func (c *SchemaCommon[K]) SetMinLength(v *int) { c.MinLength = v }

// GetPattern returns the regular expression constraint.
func (c *SchemaCommon[K]) GetPattern() string { return c.Pattern }

// SetPattern sets the regular expression constraint.
func (c *SchemaCommon[K]) SetPattern(p string) { c.Pattern = p }

// GetMaxItems returns the array length upper bound.
func (c *SchemaCommon[K]) GetMaxItems() *int { return c.MaxItems }

// SetMaxItems sets the array length upper bound.
func (c *SchemaCommon[K]) SetMaxItems(v *int) { c.MaxItems = v }

// GetMinItems returns the array length lower bound.
func (c *SchemaCommon[K]) GetMinItems() *int { return c.MinItems }

// SetMinItems sets the array length lower bound.
func (c *SchemaCommon[K]) SetMinItems(v *int) { c.MinItems = v }

// GetUniqueItems reports whether array elements must be unique.
func (c *SchemaCommon[K]) GetUniqueItems() bool { return c.UniqueItems }

// SetUniqueItems sets whether array elements must be unique.
func (c *SchemaCommon[K]) SetUniqueItems(v bool) { c.UniqueItems = v }

// GetEnum returns the enumeration of allowed values.
func (c *SchemaCommon[K]) GetEnum() []any { return c.Enum }

// SetEnum sets the enumeration of allowed values.
func (c *SchemaCommon[K]) SetEnum(v []any) { c.Enum = v }

// GetMultipleOf returns the numeric multiplier constraint.
func (c *SchemaCommon[K]) GetMultipleOf() *float64 { return c.MultipleOf }

// SetMultipleOf sets the numeric multiplier constraint.
func (c *SchemaCommon[K]) SetMultipleOf(v *float64) { c.MultipleOf = v }
