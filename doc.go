/*
Package tritcipher implements a ternary substitution cipher.

Each letter A-Z is written as three trits (3^3 = 27 >= 26), and each trit as
one of three glyphs, ▲ ▼ ◆ by default. A space becomes '/', every other
character is copied unchanged.

Three schemes are available:

  - static: the fixed code table, A={0,0,1} through Z={2,2,2}.
  - keyed permutation: the code table is reshuffled along a keyword ordering
    (keyword letters first, then the rest of the alphabet).
  - keyed additive: the code of each letter is added modulo 3 to the code of
    a repeating key letter.

Only static ciphertext can be decoded. None of the schemes provide any
cryptographic security.

The encoders live in the static, permute and additive sub-packages; this
package offers one-call helpers and a Codec that selects between them.
*/
package tritcipher
