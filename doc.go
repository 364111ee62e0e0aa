// Package microorm binds typed objects to database rows and to writable key-value
// containers.
//
// An Adapter maps one type to a set of columns through an ordered list of field
// adapters. Mappings are declared explicitly, with typed accessors instead of
// runtime reflection:
//
//	type Person struct {
//	    ID      int64
//	    Name    string
//	    Address *Address
//	}
//
//	people := microorm.NewBuilder[Person]().
//	    Field(
//	        microorm.Column("_id", func(p *Person) *int64 { return &p.ID }, microorm.Int64Codec, microorm.ReadOnly()),
//	        microorm.Column("name", func(p *Person) *string { return &p.Name }, microorm.StringCodec),
//	        microorm.EmbeddedPtr(func(p *Person) **Address { return &p.Address },
//	            microorm.Column("city", func(a *Address) *string { return &a.City }, microorm.StringCodec),
//	        ),
//	    ).
//	    Build()
//
// # Reading
//
// FromCursor populates an object from the current row of a cursor.Cursor; Load and
// ListFromCursor combine it with CreateInstance. Projection lists the columns to
// select.
//
// # Writing
//
// ToContentValues puts every writable column into a content.Values. WritableColumns
// lists them in the same order.
//
// # Errors
//
// Duplicate writable columns are reported lazily, on the first write, as a
// *DuplicateColumnsError; reads on such an adapter keep working. A rejected value
// yields a *ValidationError. Anything caused by a broken mapping (a column missing
// from the cursor, a codec returning the wrong type) is an *InternalError.
//
// # Codecs
//
// A Codec converts between raw column values and field values. The built-in codecs
// wrap the converters in the converters/common, converters/sqlite and
// converters/postgres packages; ComposeConverters and Codec.Then build custom ones.
//
// # Thread Safety
//
// An Adapter is immutable once built and safe for concurrent use. Cursors and
// containers are not; use each from one goroutine.
package microorm
