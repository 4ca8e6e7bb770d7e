package obis

import "fmt"

// Unit is a DLMS/COSEM unit code as carried in the unit field of a list entry.
type Unit uint8

const (
	UnitYear           Unit = 1
	UnitMonth          Unit = 2
	UnitWeek           Unit = 3
	UnitDay            Unit = 4
	UnitHour           Unit = 5
	UnitMinute         Unit = 6
	UnitSecond         Unit = 7
	UnitDegree         Unit = 8
	UnitCelsius        Unit = 9
	UnitCubicMeter     Unit = 13
	UnitWatt           Unit = 27
	UnitVoltAmpere     Unit = 28
	UnitVar            Unit = 29
	UnitWattHour       Unit = 30
	UnitVoltAmpereHour Unit = 31
	UnitVarHour        Unit = 32
	UnitAmpere         Unit = 33
	UnitVolt           Unit = 35
	UnitHertz          Unit = 44
	UnitCount          Unit = 255
)

var unitSymbols = map[Unit]string{
	UnitYear:           "a",
	UnitMonth:          "mo",
	UnitWeek:           "wk",
	UnitDay:            "d",
	UnitHour:           "h",
	UnitMinute:         "min",
	UnitSecond:         "s",
	UnitDegree:         "°",
	UnitCelsius:        "°C",
	UnitCubicMeter:     "m³",
	UnitWatt:           "W",
	UnitVoltAmpere:     "VA",
	UnitVar:            "var",
	UnitWattHour:       "Wh",
	UnitVoltAmpereHour: "VAh",
	UnitVarHour:        "varh",
	UnitAmpere:         "A",
	UnitVolt:           "V",
	UnitHertz:          "Hz",
	UnitCount:          "",
}

// Symbol returns the unit symbol, e.g. "Wh". Unknown units are formatted as "unit(N)".
func (u Unit) Symbol() string {
	if s, ok := unitSymbols[u]; ok {
		return s
	}

	return fmt.Sprintf("unit(%d)", uint8(u))
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return u.Symbol()
}
