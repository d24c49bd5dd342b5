
// Package fuzztests houses Go fuzz harnesses for the dialog pipeline
// (source -> scanner -> macro decoder -> compiler). Its goal is to smoke test
// robustness and guard against panics or runaway loops on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через сканер и компилятор.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/scanner, internal/macro,
// internal/compiler, internal/grammar, internal/diag.

package fuzztests
