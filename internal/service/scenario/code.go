package scenario

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strings"

	"github.com/enermap/enermap/internal/pkg/constants"
	"github.com/enermap/enermap/internal/pkg/store"
)

const (
	codeMaxUserLen  = 24
	codeMaxAttempts = 50
)

var codeDisallowed = regexp.MustCompile(`[^a-z0-9_-]+`)

// scenarioCodeBase derives the deterministic candidate code for a user
// scenario: u_<user>_<year>_<uplift>p with the username lowercased, stripped
// to [a-z0-9_-] and bounded in length.
func scenarioCodeBase(username string, year int, upliftPct float64) string {
	user := codeDisallowed.ReplaceAllString(strings.ToLower(username), "")
	if user == "" {
		user = "user"
	}
	if len(user) > codeMaxUserLen {
		user = user[:codeMaxUserLen]
	}

	return fmt.Sprintf("u_%s_%d_%dp", user, year, int(math.Round(upliftPct)))
}

// uniqueScenarioCode appends an incrementing suffix until the code is free,
// failing only after a bounded number of attempts.
func uniqueScenarioCode(ctx context.Context, st store.Store, base string) (string, error) {
	for attempt := 1; attempt <= codeMaxAttempts; attempt++ {
		candidate := base
		if attempt > 1 {
			candidate = fmt.Sprintf("%s_%d", base, attempt)
		}

		exists, err := st.ScenarioCodeExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check scenario code %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", constants.NewCodedError(
		fmt.Sprintf("could not find a free scenario code after %d attempts for %q", codeMaxAttempts, base),
		http.StatusInternalServerError,
	)
}
