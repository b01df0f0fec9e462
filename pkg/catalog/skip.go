package catalog

import (
	"fmt"

	"github.com/vhavlena/polstream/pkg/token"
)

// skipValueFrom consumes the remainder of the value introduced by tok,
// including any nested containers, without materializing it. Scalars need no
// further tokens. The tokenizer guarantees balanced delimiters, so a plain
// depth counter suffices.
func skipValueFrom(r token.Reader, tok token.Token) error {
	var depth int
	switch tok.Kind {
	case token.KindObjectStart, token.KindArrayStart:
		depth = 1
	default:
		return nil
	}
	for depth > 0 {
		tok, err := r.Next()
		if err != nil {
			return fmt.Errorf("skip value: %w", err)
		}
		switch tok.Kind {
		case token.KindObjectStart, token.KindArrayStart:
			depth++
		case token.KindObjectEnd, token.KindArrayEnd:
			depth--
		}
	}
	return nil
}
