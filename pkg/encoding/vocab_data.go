// Package encoding — stand-in vocabulary fragment list.
//
// This hand-curated list is a compact stand-in for a full vendor vocabulary
// dump: together with buildBaseVocab it supplies the byte alphabet (every
// value 0-255 as its own rank) plus a set of common multi-byte pieces so
// the BPE merge loop has real merge candidates to exercise.
package encoding

// baseVocabWords lists pieces in ascending merge-rank order (entries that
// are already single-byte tokens, such as "a" or "\n", are skipped),
// standing in for the output of a real corpus-frequency BPE trainer.
var baseVocabWords = []string{
	"the", " the", "of", " of", "and", " and",
	"to", " to", "in", " in", "a", " a",
	"is", " is", "that", " that", "for", " for",
	"on", " on", "with", " with", "as", " as",
	"are", " are", "was", " was", "this", " this",
	"be", " be", "by", " by", "an", " an",
	"at", " at", "from", " from", "or", " or",
	"have", " have", "has", " has", "had", " had",
	"not", " not", "but", " but", "all", " all",
	"can", " can", "will", " will", "would", " would",
	"there", " there", "their", " their", "what", " what",
	"about", " about", "which", " which", "when", " when",
	"one", " one", "out", " out", "up", " up",
	"so", " so", "if", " if", "more", " more",
	"no", " no", "do", " do", "time", " time",
	"year", " year", "work", " work", "first", " first",
	"way", " way", "even", " even", "new", " new",
	"want", " want", "because", " because", "any", " any",
	"these", " these", "give", " give", "day", " day",
	"most", " most", "us", " us", "he", " he",
	"she", " she", "it", " it", "we", " we",
	"you", " you", "i", " i", "they", " they",
	"them", " them", "his", " his", "her", " her",
	"its", " its", "our", " our", "your", " your",
	"my", " my", "me", " me", "him", " him",
	"good", " good", "great", " great", "little", " little",
	"own", " own", "other", " other", "old", " old",
	"right", " right", "big", " big", "high", " high",
	"different", " different", "small", " small", "large", " large",
	"next", " next", "early", " early", "young", " young",
	"important", " important", "few", " few", "public", " public",
	"bad", " bad", "same", " same", "able", " able",
	"function", " function", "return", " return", "import", " import",
	"package", " package", "main", " main", "string", " string",
	"int", " int", "float", " float", "bool", " bool",
	"error", " error", "nil", " nil", "true", " true",
	"false", " false", "struct", " struct", "interface", " interface",
	"type", " type", "var", " var", "const", " const",
	"while", " while", "switch", " switch", "case", " case",
	"default", " default", "break", " break", "continue", " continue",
	"context", " context", "err", " err", "fmt", " fmt",
	"log", " log", "os", " os", "io", " io",
	"net", " net", "http", " http", "json", " json",
	"yaml", " yaml", "test", " test", "mock", " mock",
	"assert", " assert", "require", " require", "token", " token",
	"count", " count", "tokenize", " tokenize", "encode", " encode",
	"decode", " decode", "model", " model", "message", " message",
	"content", " content", "role", " role", "system", " system",
	"user", " user", "assistant", " assistant", "tool", " tool",
	"call", " call", "result", " result", "schema", " schema",
	"object", " object", "array", " array", "number", " number",
	"boolean", " boolean", "enum", " enum", "property", " property",
	"description", " description", "required", " required", "additional", " additional",
	"nested", " nested", "element", " element", "value", " value",
	"values", " values", "rank", " rank", "merge", " merge",
	"byte", " byte", "bytes", " bytes", "pattern", " pattern",
	"regex", " regex", "special", " special", "vocab", " vocab",
	"encoding", " encoding", "cache", " cache", "piece", " piece",
	"overhead", " overhead", "coefficient", " coefficient", "request", " request",
	"response", " response", "server", " server", "client", " client",
	"config", " config", "load", " load", "save", " save",
	"store", " store", "write", " write", "read", " read",
	"open", " open", "close", " close", "file", " file",
	"path", " path", "name", " name", "key", " key",
	"map", " map", "list", " list", "slice", " slice",
	"append", " append", "length", " length", "size", " size",
	"index", " index", "start", " start", "end", " end",
	"offset", " offset", "prefix", " prefix", "suffix", " suffix",
	"parse", " parse", "split", " split", "join", " join",
	"trim", " trim", "upper", " upper", "lower", " lower",
	"space", " space", "newline", " newline", "tab", " tab",
	"quote", " quote", "hello", " hello", "world", " world",
	"example", " example", "sample", " sample", "data", " data",
	"input", " input", "output", " output", "process", " process",
	"handle", " handle", "create", " create", "delete", " delete",
	"update", " update", "insert", " insert", "select", " select",
	"query", " query", "table", " table", "column", " column",
	"row", " row", "field", " field", "database", " database",
	"connection", " connection", "pool", " pool", "thread", " thread",
	"lock", " lock", "mutex", " mutex", "channel", " channel",
	"goroutine", " goroutine", "sync", " sync", "wait", " wait",
	"group", " group", "done", " done", "version", " version",
	"build", " build", "release", " release", "commit", " commit",
	"branch", " branch", "pull", " pull", "push", " push",
	"clone", " clone", "repo", " repo", "module", " module",
	"ing", "tion", "ed", "er", "ly", "al",
	"ive", "ness", "ment", "ity", "ous", "ful",
	"less", "est", "ent", "ance", "ence", "ize",
	"ise", "ism", "ist", "re", "un", "pre",
	"dis", "non", "over", "under", "co", "de",
	"ex", "th", "en", "es", "ar", "nd",
	"ti", "ha", "ou", "it's", "don't", "can't",
	"won't", "it.", "the.", "--", "==", "()",
	"{}", "[]", "->", "=>", "://", "www.",
	".com", ".go", ".py", ".json", "\n", "\n\n",
	"  ", "   ", "    ", "\t",
}
