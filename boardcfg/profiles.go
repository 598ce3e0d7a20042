package boardcfg

// Embedded profiles, keyed by board name. Populate by hand during
// development or from generated tables at build time.

const cfgBluepill = `{
  "sysclock_mhz": 24,
  "tick_unit": "ms",
  "tick_step": 1,
  "console": {
    "mapping": "pa9_pa10",
    "baud": 9600
  }
}`

const cfgMaple = `{
  "sysclock_mhz": 72,
  "tick_unit": "ms",
  "tick_step": 1,
  "console": {
    "mapping": "pb6_pb7",
    "baud": 115200,
    "rx_buffer": 512
  }
}`

var embeddedProfiles = map[string][]byte{
	"bluepill": []byte(cfgBluepill),
	"maple":    []byte(cfgMaple),
}
