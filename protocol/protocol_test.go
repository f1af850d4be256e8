package protocol

import (
	"encoding/json"
	"testing"

	utils "github.com/fusiongabin/uno-server/internal"
)

func TestCmdJSON(t *testing.T) {
	t.Run("commands cross the wire by name", func(t *testing.T) {
		raw, err := json.Marshal(CounterUno)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, string(raw), `"CounterUno"`)
	})

	t.Run("round trip", func(t *testing.T) {
		for cmd := range CmdNames {
			raw, err := json.Marshal(cmd)
			utils.AssertNoError(t, err)

			var back Cmd
			utils.AssertNoError(t, json.Unmarshal(raw, &back))
			utils.AssertEqual(t, back, cmd)
		}
	})

	t.Run("unknown names are rejected", func(t *testing.T) {
		var c Cmd
		utils.AssertErrored(t, json.Unmarshal([]byte(`"Teleport"`), &c))
	})

	t.Run("name tables agree", func(t *testing.T) {
		utils.AssertEqual(t, len(CmdNames), len(NameToCmd))
		for cmd, name := range CmdNames {
			utils.AssertEqual(t, NameToCmd[name], cmd)
		}
	})
}
