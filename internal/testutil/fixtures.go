// internal/testutil/fixtures.go
package testutil

// Fixture data para tests (valores primitivos solamente, sin dependencias de domain)

// FixtureProfiles asocia nombres registrados con su UUID canónico.
var FixtureProfiles = map[string]string{
	"Notch":      "069a79f4-44e9-4726-a5be-fca90e38aaf5",
	"jeb_":       "853c80ef-3c37-49fd-aa49-938b674adae6",
	"Dinnerbone": "61699b2e-d327-4a01-9f1e-0ea8c3f06bc6",
	"Grumm":      "e6b5c088-0680-44df-9e1b-9bf11792291b",
}

// FixtureUnregistered contiene nombres válidos sin cuenta.
var FixtureUnregistered = []string{
	"zz_nobody_zz",
	"qqq_unused",
	"xx_free_xx",
}

// FixtureInvalidNames contiene nombres que el saneado o los límites descartan.
var FixtureInvalidNames = []string{
	"",
	"ab",
	"---",
	"thisnameiswaytoolong",
}

// FixtureWordlist es una lista mezclada de nombres registrados y libres.
var FixtureWordlist = []string{
	"Notch",
	"zz_nobody_zz",
	"jeb_",
	"qqq_unused",
	"Dinnerbone",
	"Grumm",
	"xx_free_xx",
}
