package mesh

import "errors"

var (
	ErrInvalidArgument         = errors.New("invalid argument")
	ErrUnsupportedDimension    = errors.New("unsupported dimension")
	ErrFacesNotComputed        = errors.New("faces not computed")
	ErrBoundaryFaceNotManifold = errors.New("boundary face not manifold")
	ErrEmptyMesh               = errors.New("empty mesh")
)
