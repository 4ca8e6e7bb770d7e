// Package obis provides OBIS object identifiers and a registry of their names.
//
// SML list entries name the reported quantity with a six byte object name, which
// for electricity meters is an OBIS code:
//
//	for name, value := range resp.Values() {
//		fmt.Println(obis.Name(name), value)
//	}
package obis
