// Package translator provides word translation through a remote
// backend and the concurrent fan-out across every configured language.
package translator

import (
	"context"

	"github.com/epinault/polydict/internal/language"
)

// DefaultSentinel replaces a translation when the backend fails for a
// language pair, so consumers never branch on per-language errors.
const DefaultSentinel = "Non trouvé"

// Translator translates a single text between two configured
// languages. Implementations must honor ctx cancellation.
type Translator interface {
	Translate(ctx context.Context, text string, source, target language.Code) (string, error)
}
