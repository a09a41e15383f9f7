// Package namegen_test - shared training corpora for the model tests.
//
// The lists live only in tests: the library itself ships no corpus, which
// is the point of the model.
package namegen_test

// orcNames is a positive corpus with heavy consonant clusters.
var orcNames = []string{
	"Grukthar", "Morgash", "Throgar", "Uzgor", "Braknul", "Drokmar", "Kazgul",
	"Snagdug", "Urgoth", "Gorvak", "Thrumok", "Zugrak", "Nargul", "Bolgrak",
	"Drughul", "Krogath", "Ruzgar", "Maghduk", "Vorgoth", "Thrakkar", "Zulmak",
	"Hrognak", "Borgak", "Karnuk", "Grashnag", "Mokthul", "Skorvash", "Thugrak",
	"Drakmor", "Urdok", "Snargol", "Varkash", "Grendok", "Durngash", "Zargom",
	"Krugash", "Rakhgar", "Murgol", "Tharzug", "Gorndak", "Skalthok", "Bruzmor",
	"Kragdul", "Ogrash", "Durzog", "Thogmak", "Vrundak", "Zulgron", "Narvok",
	"Gruthar", "Skarnug", "Bolguth", "Ugrash", "Vundrak", "Gharzok", "Thurgul",
	"Marnok", "Drogar", "Ruzmok", "Skullgar", "Krundol", "Zaghul", "Borgruk",
	"Uzkoth", "Thargok", "Drugnok", "Krothar", "Snarlgash", "Muglok", "Vrogmar",
	"Hrukgar", "Zorkhul", "Ghazmog", "Drogath", "Thundak", "Urgmok", "Krazgor",
	"Snazguk", "Grolnak", "Mokgar", "Grumzak",
}

// goblinNames is a second positive corpus with a different texture.
var goblinNames = []string{
	"Agrak", "Blurg", "Snatch", "Grimbok", "Drekk", "Marnok", "Zurg", "Nobble",
	"Gretch", "Fangrot", "Urruk", "Krindle", "Snagtooth", "Dribble", "Bogmar",
	"Ruknash", "Thrag", "Gobbuk", "Snort", "Lugnut", "Drazik", "Gribble",
	"Zarflik", "Wartug", "Kobnash", "Bligg", "Frobnar", "Krelg", "Muggrit",
	"Razzik", "Harnuk", "Thizzle", "Snarp", "Nurk", "Brub", "Garnik", "Kork",
	"Trug", "Mibnob", "Floggut", "Zarn", "Druk", "Wiblik", "Grask", "Trog",
	"Skarn", "Nibbit", "Frash", "Vrogg", "Grunk", "Hibble", "Zobnik", "Krelgash",
	"Nok", "Slarn", "Ugzor", "Drib", "Garnob", "Snork", "Mograt", "Rugluk",
}

// notNames is a negative corpus: letter soups no culture would call a name.
var notNames = []string{
	"aaaaaa", "zzzzz", "qqqq", "xxxxx", "bcdfg", "mnpqr", "aeiouae", "uuuu",
	"kkkkkk", "tttttt", "qwrtpsd", "zxcvbnm", "hgfdsa", "lkjhgf", "ooooo",
	"ghghghgh", "ngngng", "srsrsr", "plplpl", "wvwvwv",
}
