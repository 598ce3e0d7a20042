// Package boardcfg holds the embedded per-board bring-up profiles: the
// clock tree, the tick base and the console UART a board wants. The
// cmd mains load one profile and walk it through rcc, systick and
// uart configuration in that order.
package boardcfg

import (
	"github.com/andreyvit/tinyjson"

	"f103periph-go/errcode"
	"f103periph-go/rcc"
	"f103periph-go/systick"
	"f103periph-go/uart"
	"f103periph-go/x/strx"
)

const DefaultBoard = "bluepill"

// Console is the UART bring-up a board wants for its serial console.
// Instance always matches the mapping's owner.
type Console struct {
	Instance uart.Instance
	Mapping  uart.Mapping
	Baud     uint32
	RxBuffer int
}

// Profile is one board's bring-up settings.
type Profile struct {
	Board    string
	SysClock rcc.SysClock
	TickUnit systick.StepUnit
	TickStep uint16
	Console  Console
}

// EmbeddedProfileLookup resolves a board name to raw profile JSON.
// Overridable for tests and generated tables.
var EmbeddedProfileLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedProfiles[board]
	return b, ok
}

// Mapping names as they appear in profile JSON. Each pin pair belongs
// to exactly one instance, so the name pins down the instance too.
var mappingByName = map[string]uart.Mapping{
	"pa9_pa10":  uart.UART1TxPA9RxPA10,
	"pb6_pb7":   uart.UART1TxPB6RxPB7,
	"pa2_pa3":   uart.UART2TxPA2RxPA3,
	"pd5_pd6":   uart.UART2TxPD5RxPD6,
	"pb10_pb11": uart.UART3TxPB10RxPB11,
	"pc10_pc11": uart.UART3TxPC10RxPC11,
	"pd8_pd9":   uart.UART3TxPD8RxPD9,
}

// Load parses the embedded profile for a board. An empty name loads
// DefaultBoard. Board names are matched case-insensitively.
func Load(board string) (Profile, error) {
	board = strx.LowerASCII(strx.Coalesce(board, DefaultBoard))
	raw, ok := EmbeddedProfileLookup(board)
	if !ok || len(raw) == 0 {
		return Profile{}, &errcode.E{C: errcode.UnknownBoard, Op: "boardcfg.Load", Msg: board}
	}

	r := tinyjson.Raw(raw)
	val := r.Value()
	r.EnsureEOF()

	m, ok := val.(map[string]any)
	if !ok {
		return Profile{}, badField(board, "profile is not a JSON object")
	}
	return profileFromMap(board, m)
}

func badField(board, what string) error {
	return &errcode.E{C: errcode.InvalidParams, Op: "boardcfg.Load", Msg: board + ": " + what}
}

func profileFromMap(board string, m map[string]any) (Profile, error) {
	p := Profile{Board: board, TickUnit: systick.Millis, TickStep: 1}

	mhz, ok := asUint(m["sysclock_mhz"])
	if !ok {
		return Profile{}, badField(board, "sysclock_mhz")
	}
	clk, ok := rcc.ClockFor(mhz)
	if !ok {
		return Profile{}, badField(board, "sysclock_mhz")
	}
	p.SysClock = clk

	if v, present := m["tick_unit"]; present {
		switch v {
		case "ms":
			p.TickUnit = systick.Millis
		case "us":
			p.TickUnit = systick.Micros
		default:
			return Profile{}, badField(board, "tick_unit")
		}
	}
	if v, present := m["tick_step"]; present {
		n, ok := asUint(v)
		if !ok || n == 0 || n > systick.MaxStep {
			return Profile{}, badField(board, "tick_step")
		}
		p.TickStep = uint16(n)
	}

	cv, present := m["console"]
	if !present {
		return Profile{}, badField(board, "console")
	}
	cm, ok := cv.(map[string]any)
	if !ok {
		return Profile{}, badField(board, "console")
	}
	name, _ := cm["mapping"].(string)
	mp, ok := mappingByName[name]
	if !ok {
		return Profile{}, badField(board, "console.mapping")
	}
	baud, ok := asUint(cm["baud"])
	if !ok || baud == 0 {
		return Profile{}, badField(board, "console.baud")
	}
	p.Console = Console{Instance: mp.Instance(), Mapping: mp, Baud: baud}
	if v, present := cm["rx_buffer"]; present {
		n, ok := asUint(v)
		if !ok {
			return Profile{}, badField(board, "console.rx_buffer")
		}
		p.Console.RxBuffer = int(n)
	}
	return p, nil
}

// asUint accepts whichever number type the JSON layer hands back.
func asUint(v any) (uint32, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n != float64(uint32(n)) {
			return 0, false
		}
		return uint32(n), true
	case int:
		if n < 0 || uint64(n) > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(n), true
	case int64:
		if n < 0 || uint64(n) > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(n), true
	case uint64:
		if n > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(n), true
	default:
		return 0, false
	}
}
