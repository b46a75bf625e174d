package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// AlgorithmID names one of the three clone-detection algorithms (spec §1).
type AlgorithmID string

const (
	AlgorithmOxygen   AlgorithmID = "oxygen"
	AlgorithmChlorine AlgorithmID = "chlorine"
	AlgorithmIodine   AlgorithmID = "iodine"
)

// String implements fmt.Stringer so AlgorithmID prints as its JSON form in
// log messages and error text.
func (a AlgorithmID) String() string {
	return string(a)
}

// Origins is an insertion-ordered map from an origin's "file:line:col" key
// to its similarity coefficient. Key order is encounter order during
// analysis (spec §6) — a plain Go map cannot guarantee that on iteration or
// marshaling, so this uses an explicit ordered map instead.
type Origins = *orderedmap.OrderedMap[string, float64]

// NewOrigins constructs an empty, insertion-ordered Origins map.
func NewOrigins() Origins {
	return orderedmap.New[string, float64]()
}

// DetectedClone is one reported cluster of structurally similar subtrees
// (spec §3). It is produced terminally by the runner and is immutable
// thereafter.
type DetectedClone struct {
	// Value is the common skeleton's root value (the pattern's value for
	// Iodine, or the shared skeleton_hash-equal subtree's root value for
	// Oxygen/Chlorine).
	Value string

	// MatchWeight is the number of non-hole nodes in the pattern/group.
	MatchWeight int

	// Origins maps each occurrence's "file:line:col" to its similarity
	// coefficient: always 1.0 for Oxygen/Chlorine, match_weight/weight(o)
	// for Iodine.
	Origins Origins
}

// NewDetectedClone constructs a DetectedClone with an empty Origins map
// ready to be populated in encounter order.
func NewDetectedClone(value string, matchWeight int) *DetectedClone {
	return &DetectedClone{
		Value:       value,
		MatchWeight: matchWeight,
		Origins:     NewOrigins(),
	}
}

// cloneJSON is the wire shape of a DetectedClone (spec §6): integers
// unquoted, floats at full precision, origins key order preserved.
type cloneJSON struct {
	Value       string                                    `json:"value"`
	MatchWeight int                                       `json:"match_weight"`
	Origins     *orderedmap.OrderedMap[string, float64]    `json:"origins"`
}

// MarshalJSON renders the stable shape from spec §6.
func (c *DetectedClone) MarshalJSON() ([]byte, error) {
	origins := c.Origins
	if origins == nil {
		origins = NewOrigins()
	}
	return json.Marshal(cloneJSON{
		Value:       c.Value,
		MatchWeight: c.MatchWeight,
		Origins:     origins,
	})
}

// UnmarshalJSON restores a DetectedClone from the spec §6 shape, preserving
// the origins key order found in the input document.
func (c *DetectedClone) UnmarshalJSON(data []byte) error {
	var raw cloneJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	c.Value = raw.Value
	c.MatchWeight = raw.MatchWeight
	c.Origins = raw.Origins
	if c.Origins == nil {
		c.Origins = NewOrigins()
	}
	return nil
}

// DetectionResult is the runner's terminal artifact: an ordered list of
// DetectedClones plus algorithm identity (spec §3, §6).
type DetectionResult struct {
	Algorithm AlgorithmID
	Clones    []*DetectedClone
}

// NewDetectionResult constructs an empty DetectionResult for the given
// algorithm.
func NewDetectionResult(algorithm AlgorithmID) *DetectionResult {
	return &DetectionResult{Algorithm: algorithm, Clones: []*DetectedClone{}}
}

type resultJSON struct {
	Algorithm AlgorithmID      `json:"algorithm"`
	Clones    []*DetectedClone `json:"clones"`
}

// MarshalJSON renders the stable top-level shape from spec §6.
func (r *DetectionResult) MarshalJSON() ([]byte, error) {
	clones := r.Clones
	if clones == nil {
		clones = []*DetectedClone{}
	}
	return json.Marshal(resultJSON{Algorithm: r.Algorithm, Clones: clones})
}

// UnmarshalJSON restores a DetectionResult from the spec §6 shape.
func (r *DetectionResult) UnmarshalJSON(data []byte) error {
	var raw resultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Algorithm = raw.Algorithm
	r.Clones = raw.Clones
	if r.Clones == nil {
		r.Clones = []*DetectedClone{}
	}
	return nil
}

// ValidateAlgorithmRepoCount checks the (algorithm, repo-count) combination
// against the support matrix in spec §4.8, returning a UserInputError for
// the two combinations the runner must reject.
func ValidateAlgorithmRepoCount(algorithm AlgorithmID, repoCount int) error {
	switch algorithm {
	case AlgorithmOxygen:
		if repoCount == 2 {
			return NewUserInputError("oxygen does not support two-repo analysis")
		}
	case AlgorithmIodine:
		if repoCount == 1 {
			return NewUserInputError("iodine does not support single-repo analysis")
		}
	case AlgorithmChlorine:
		// both one and two repos are supported
	default:
		return NewUserInputError(fmt.Sprintf("unknown algorithm %q", algorithm))
	}
	if repoCount != 1 && repoCount != 2 {
		return NewUserInputError(fmt.Sprintf("unsupported repo count %d", repoCount))
	}
	return nil
}
