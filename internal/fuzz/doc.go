// Package fuzztests houses Go fuzz harnesses for the adaleph front end
// (source -> lexer -> parser -> driver). They guard against panics, hangs and
// broken trees on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через лексер, парсер и sentinel-API
// и проверять инварианты дерева (testkit.CheckFile).
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/driver,
// internal/tree, internal/testkit.

package fuzztests
