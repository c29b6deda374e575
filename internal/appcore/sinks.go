package appcore

import "keggmod/internal/writers"

// Sink stores one rendered record and returns where it went.
type Sink interface {
	Put(moduleID, text string) (string, error)
}

// DirSink writes each record to <dir>/<module id>.
type DirSink struct {
	Dir string
}

// NewDirSink prepares <outDir>/modules and returns a sink writing into it.
func NewDirSink(outDir string) (DirSink, error) {
	dir, err := writers.ModuleDir(outDir)
	if err != nil {
		return DirSink{}, err
	}
	return DirSink{Dir: dir}, nil
}

func (s DirSink) Put(moduleID, text string) (string, error) {
	return writers.WriteModuleFile(s.Dir, moduleID, text)
}
