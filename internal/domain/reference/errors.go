package reference

import "errors"

// ErrUnknownDataset indicates the dataset name is not registered.
var ErrUnknownDataset = errors.New("unknown reference dataset")
