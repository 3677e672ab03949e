// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package books

import "github.com/philologus/morphquery/pkg/types"

// ntBooks is the New Testament table. Codes 01-27 match the MorphGNT
// reference numbering used by the word store.
var ntBooks = []Book{
	{Code: "01", Name: "Matthew", Abbrev: "Matt", Corpus: types.CorpusNT, AltNames: []string{"mt"}},
	{Code: "02", Name: "Mark", Abbrev: "Mark", Corpus: types.CorpusNT, AltNames: []string{"mk", "mar"}},
	{Code: "03", Name: "Luke", Abbrev: "Luke", Corpus: types.CorpusNT, AltNames: []string{"lk", "luk"}},
	{Code: "04", Name: "John", Abbrev: "John", Corpus: types.CorpusNT, AltNames: []string{"jn", "joh"}},
	{Code: "05", Name: "Acts", Abbrev: "Acts", Corpus: types.CorpusNT, AltNames: []string{"ac", "act"}},
	{Code: "06", Name: "Romans", Abbrev: "Rom", Corpus: types.CorpusNT, AltNames: []string{"ro"}},
	{Code: "07", Name: "1Corinthians", Abbrev: "1Cor", Corpus: types.CorpusNT, AltNames: []string{"1co"}},
	{Code: "08", Name: "2Corinthians", Abbrev: "2Cor", Corpus: types.CorpusNT, AltNames: []string{"2co"}},
	{Code: "09", Name: "Galatians", Abbrev: "Gal", Corpus: types.CorpusNT, AltNames: []string{"ga"}},
	{Code: "10", Name: "Ephesians", Abbrev: "Eph", Corpus: types.CorpusNT},
	{Code: "11", Name: "Philippians", Abbrev: "Phil", Corpus: types.CorpusNT, AltNames: []string{"php"}},
	{Code: "12", Name: "Colossians", Abbrev: "Col", Corpus: types.CorpusNT},
	{Code: "13", Name: "1Thessalonians", Abbrev: "1Thess", Corpus: types.CorpusNT, AltNames: []string{"1th"}},
	{Code: "14", Name: "2Thessalonians", Abbrev: "2Thess", Corpus: types.CorpusNT, AltNames: []string{"2th"}},
	{Code: "15", Name: "1Timothy", Abbrev: "1Tim", Corpus: types.CorpusNT, AltNames: []string{"1ti"}},
	{Code: "16", Name: "2Timothy", Abbrev: "2Tim", Corpus: types.CorpusNT, AltNames: []string{"2ti"}},
	{Code: "17", Name: "Titus", Abbrev: "Titus", Corpus: types.CorpusNT, AltNames: []string{"tit"}},
	{Code: "18", Name: "Philemon", Abbrev: "Phlm", Corpus: types.CorpusNT, AltNames: []string{"phm", "philem"}},
	{Code: "19", Name: "Hebrews", Abbrev: "Heb", Corpus: types.CorpusNT},
	{Code: "20", Name: "James", Abbrev: "Jas", Corpus: types.CorpusNT, AltNames: []string{"jam"}},
	{Code: "21", Name: "1Peter", Abbrev: "1Pet", Corpus: types.CorpusNT, AltNames: []string{"1pe"}},
	{Code: "22", Name: "2Peter", Abbrev: "2Pet", Corpus: types.CorpusNT, AltNames: []string{"2pe"}},
	{Code: "23", Name: "1John", Abbrev: "1John", Corpus: types.CorpusNT, AltNames: []string{"1jn", "1jo"}},
	{Code: "24", Name: "2John", Abbrev: "2John", Corpus: types.CorpusNT, AltNames: []string{"2jn", "2jo"}},
	{Code: "25", Name: "3John", Abbrev: "3John", Corpus: types.CorpusNT, AltNames: []string{"3jn", "3jo"}},
	{Code: "26", Name: "Jude", Abbrev: "Jude", Corpus: types.CorpusNT, AltNames: []string{"jud"}},
	{Code: "27", Name: "Revelation", Abbrev: "Rev", Corpus: types.CorpusNT, AltNames: []string{"re"}},
}

// lxxBooks is the Septuagint table, codes 40-78.
var lxxBooks = []Book{
	{Code: "40", Name: "Genesis", Abbrev: "Gen", Corpus: types.CorpusLXX},
	{Code: "41", Name: "Exodus", Abbrev: "Exod", Corpus: types.CorpusLXX, AltNames: []string{"ex"}},
	{Code: "42", Name: "Leviticus", Abbrev: "Lev", Corpus: types.CorpusLXX},
	{Code: "43", Name: "Numbers", Abbrev: "Num", Corpus: types.CorpusLXX},
	{Code: "44", Name: "Deuteronomy", Abbrev: "Deut", Corpus: types.CorpusLXX, AltNames: []string{"dt"}},
	{Code: "45", Name: "Joshua", Abbrev: "Josh", Corpus: types.CorpusLXX},
	{Code: "46", Name: "Judges", Abbrev: "Judg", Corpus: types.CorpusLXX},
	{Code: "47", Name: "Ruth", Abbrev: "Ruth", Corpus: types.CorpusLXX},
	{Code: "48", Name: "1Samuel", Abbrev: "1Sam", Corpus: types.CorpusLXX},
	{Code: "49", Name: "2Samuel", Abbrev: "2Sam", Corpus: types.CorpusLXX},
	{Code: "50", Name: "1Kings", Abbrev: "1Kgs", Corpus: types.CorpusLXX},
	{Code: "51", Name: "2Kings", Abbrev: "2Kgs", Corpus: types.CorpusLXX},
	{Code: "52", Name: "1Chronicles", Abbrev: "1Chr", Corpus: types.CorpusLXX},
	{Code: "53", Name: "2Chronicles", Abbrev: "2Chr", Corpus: types.CorpusLXX},
	{Code: "54", Name: "Ezra", Abbrev: "Ezra", Corpus: types.CorpusLXX},
	{Code: "55", Name: "Nehemiah", Abbrev: "Neh", Corpus: types.CorpusLXX},
	{Code: "56", Name: "Esther", Abbrev: "Esth", Corpus: types.CorpusLXX},
	{Code: "57", Name: "Job", Abbrev: "Job", Corpus: types.CorpusLXX},
	{Code: "58", Name: "Psalms", Abbrev: "Ps", Corpus: types.CorpusLXX, AltNames: []string{"psa", "psalm"}},
	{Code: "59", Name: "Proverbs", Abbrev: "Prov", Corpus: types.CorpusLXX},
	{Code: "60", Name: "Ecclesiastes", Abbrev: "Eccl", Corpus: types.CorpusLXX},
	{Code: "61", Name: "SongOfSolomon", Abbrev: "Song", Corpus: types.CorpusLXX},
	{Code: "62", Name: "Isaiah", Abbrev: "Isa", Corpus: types.CorpusLXX},
	{Code: "63", Name: "Jeremiah", Abbrev: "Jer", Corpus: types.CorpusLXX},
	{Code: "64", Name: "Lamentations", Abbrev: "Lam", Corpus: types.CorpusLXX},
	{Code: "65", Name: "Ezekiel", Abbrev: "Ezek", Corpus: types.CorpusLXX},
	{Code: "66", Name: "Daniel", Abbrev: "Dan", Corpus: types.CorpusLXX},
	{Code: "67", Name: "Hosea", Abbrev: "Hos", Corpus: types.CorpusLXX},
	{Code: "68", Name: "Joel", Abbrev: "Joel", Corpus: types.CorpusLXX},
	{Code: "69", Name: "Amos", Abbrev: "Amos", Corpus: types.CorpusLXX},
	{Code: "70", Name: "Obadiah", Abbrev: "Obad", Corpus: types.CorpusLXX},
	{Code: "71", Name: "Jonah", Abbrev: "Jonah", Corpus: types.CorpusLXX},
	{Code: "72", Name: "Micah", Abbrev: "Mic", Corpus: types.CorpusLXX},
	{Code: "73", Name: "Nahum", Abbrev: "Nah", Corpus: types.CorpusLXX},
	{Code: "74", Name: "Habakkuk", Abbrev: "Hab", Corpus: types.CorpusLXX},
	{Code: "75", Name: "Zephaniah", Abbrev: "Zeph", Corpus: types.CorpusLXX},
	{Code: "76", Name: "Haggai", Abbrev: "Hag", Corpus: types.CorpusLXX},
	{Code: "77", Name: "Zechariah", Abbrev: "Zech", Corpus: types.CorpusLXX},
	{Code: "78", Name: "Malachi", Abbrev: "Mal", Corpus: types.CorpusLXX},
}
