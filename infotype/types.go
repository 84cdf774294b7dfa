package infotype

import (
	"github.com/oclkit/cl-runtime/infotype/internal/shape"
)

type Kind = shape.Kind

const (
	KindInt            = shape.KindInt
	KindUint           = shape.KindUint
	KindLong           = shape.KindLong
	KindUlong          = shape.KindUlong
	KindSize           = shape.KindSize
	KindPtr            = shape.KindPtr
	KindStr            = shape.KindStr
	KindVecInt         = shape.KindVecInt
	KindVecUint        = shape.KindVecUint
	KindVecLong        = shape.KindVecLong
	KindVecUlong       = shape.KindVecUlong
	KindVecSize        = shape.KindVecSize
	KindVecPtr         = shape.KindVecPtr
	KindVecVecUchar    = shape.KindVecVecUchar
	KindUuid           = shape.KindUuid
	KindLuid           = shape.KindLuid
	KindVecNameVersion = shape.KindVecNameVersion
	KindVecImageFormat = shape.KindVecImageFormat
)

const (
	UuidSize = shape.UuidSize
	LuidSize = shape.LuidSize
)
