// Package fuzztests houses Go fuzz harnesses that push arbitrary bytes
// through the lil-C pipeline (source -> lexer -> parser -> names -> types ->
// unparse). The goal is to smoke test robustness: no panics, no hangs and a
// stable canonical form for every program that checks cleanly.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
