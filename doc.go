/*
Package protodef decodes and encodes the wire primitives of protodef-style
protocol descriptions into a dynamic value tree.

The package provides:

1. Value, a closed set of variants: *Object, *Array, Bool, Buffer, String,
the fixed-width integers Uint8..Int64, Float, Double and Void.

2. Cursor, a bounds-checked forward-only view over an input buffer.

3. Codecs, one per wire primitive, each with a Parse that consumes a Cursor and
a Serial that appends to a byte slice. Lookup maps protodef type names (u8,
i32, f64, varint, bool, cstring, void) to codecs.

4. AsCount and Text, which turn an already decoded field into a length or a
textual key.

5. Conversions of a tree to MessagePack (lossless), JSON and CBOR (lossy),
for storage and debugging.

Deciding which codec to call for which field (the schema) is left to the
caller.

# Wire formats

**Fixed-width numbers.** Big-endian; two's complement for signed integers;
IEEE-754 binary32/binary64 for f32/f64.

**varint.** A 32-bit value in 7-bit groups, least significant group first,
the high bit set on all groups but the last. At most 5 bytes; a fifth byte
that sets bits above 32 is rejected.

**bool.** One byte, 0 or 1.

**cstring.** UTF-8 bytes followed by a single zero byte.

**Length-given buffer/string.** Raw bytes, length supplied out of band. The
Prefixed codecs put the length in front using any Counter codec.

# Errors

Parse failures are *DataError values wrapping one of the Err* sentinels;
serial failures are *TypeError (ErrTypeMismatch) or *CountError
(ErrInvalidCount). A failed Parse never moves the cursor.
*/
package protodef
