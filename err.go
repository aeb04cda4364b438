package main

import (
	"fmt"
	"os"
	"syscall"
)

const (
	EIO    = 5
	EINVAL = 22
)

const (
	GenericErrCode = 5000 + iota
	MissingProgramErrCode
	DumpErrCode
	MetaErrCode
)

type Error struct {
	Cause error
	Code  int
}

func (e *Error) Error() string {
	return e.Cause.Error()
}

func Exit(e error) {
	if e == nil {
		return
	}
	fmt.Println(e)
	if e, ok := e.(*Error); ok {
		os.Exit(e.Code)
	} else {
		os.Exit(GenericErrCode)
	}
}

func checkError(err, parent error) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *os.PathError:
		return checkError(e.Err, err)
	case syscall.Errno:
		if parent != nil {
			err = parent
		}
		return &Error{Cause: err, Code: int(e)}
	default:
		return err
	}
}

func badUsage(n string) error {
	e := Error{
		Cause: fmt.Errorf(n),
		Code:  EINVAL,
	}
	return &e
}

func genericErr(n string) error {
	e := Error{
		Cause: fmt.Errorf(n),
		Code:  GenericErrCode,
	}
	return &e
}

func missingProgram(n string) error {
	e := Error{
		Cause: fmt.Errorf("%s: program does not exist; cannot combine plots into a single PDF file", n),
		Code:  MissingProgramErrCode,
	}
	return &e
}

func dumpFailed(n string, err error) error {
	e := Error{
		Cause: fmt.Errorf("%s: dump extraction failed (%v)", n, err),
		Code:  DumpErrCode,
	}
	return &e
}

func badMeta(file, msg string) error {
	e := Error{
		Cause: fmt.Errorf("%s: invalid DOCUMENTATION block: %s", file, msg),
		Code:  MetaErrCode,
	}
	return &e
}
