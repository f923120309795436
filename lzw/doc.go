// Package lzw implements Lempel-Ziv-Welch compression with fixed-width codes
// and an explicit end-of-stream code.
//
// # Stream Format
//
// A stream is a dense sequence of W-bit codes (W = 12 by default), most
// significant bit first, terminated by code 256 (EOS). The final byte is
// padded with zero bits. There is no header and the dictionary is never
// transmitted: the decoder rebuilds it from the codes.
//
//	codes 0-255     single bytes, bound before any input is read
//	code  256       end of stream
//	codes 257..2^W-1 learned sequences, assigned in increasing order
//
// Once code 2^W-1 has been assigned the dictionary freezes. Compression
// continues with the frozen dictionary.
//
// # Components
//
// Dictionary is the encoder side: a trie whose first level is indexed by byte
// and whose deeper levels are ternary search trees in an index-addressed node
// arena. It answers longest-prefix queries in time proportional to the match.
//
// CodeTable is the decoder side: a flat slice indexed by code. Resolve returns
// a tagged Resolution so the decoder can tell a bound code from the classic
// self-reference case (the encoder emitted a code in the same step it created
// it) and from a corrupt stream.
//
// # Basic Usage
//
//	stream, err := lzw.Compress([]byte("TOBEORNOTTOBEORTOBEORNOT"))
//	if err != nil {
//	    return err
//	}
//	text, err := lzw.Expand(stream)
//
// A different width must be configured on both sides:
//
//	enc, _ := lzw.NewEncoder(lzw.WithCodeWidth(16))
//	dec, _ := lzw.NewDecoder(lzw.WithCodeWidth(16))
//
// # Thread Safety
//
// Encoder and Decoder hold only configuration and can be shared. Dictionary
// and CodeTable belong to one run and must not be shared.
package lzw
