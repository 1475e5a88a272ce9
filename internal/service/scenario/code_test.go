package scenario

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScenarioCodeBase(t *testing.T) {
	assert.Equal(t, "u_mariorossi_2030_10p", scenarioCodeBase("Mario Rossi!", 2030, 10.4))
	assert.Equal(t, "u_anna_b-1_2025_0p", scenarioCodeBase("anna_b-1", 2025, 0))

	// rounding, not truncation, of the percentage
	assert.Equal(t, "u_x_2030_13p", scenarioCodeBase("x", 2030, 12.5))
}

func TestScenarioCodeBase_EmptyAfterSanitize(t *testing.T) {
	assert.Equal(t, "u_user_2030_5p", scenarioCodeBase("", 2030, 5))
	assert.Equal(t, "u_user_2030_5p", scenarioCodeBase("@@@", 2030, 5))
}

func TestScenarioCodeBase_TruncatesLongUsernames(t *testing.T) {
	code := scenarioCodeBase(strings.Repeat("a", 100), 2030, 5)
	assert.Equal(t, "u_"+strings.Repeat("a", codeMaxUserLen)+"_2030_5p", code)
}
