package ast

import "lilc/internal/source"

// File is the Program node: the ordered top-level declarations of one source file.
type File struct {
	Span  source.Span
	Decls []DeclID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{Arena: NewArena[File](capHint)}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{Span: sp, Decls: make([]DeclID, 0)}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}

// Block is a brace-delimited body. Items keep source order so that a use
// before a local declaration stays a use before it.
type Block struct {
	Span  source.Span
	Items []BlockItem
}

// BlockItem holds exactly one of Decl or Stmt.
type BlockItem struct {
	Decl DeclID
	Stmt StmtID
}

func DeclItem(id DeclID) BlockItem { return BlockItem{Decl: id} }
func StmtItem(id StmtID) BlockItem { return BlockItem{Stmt: id} }
