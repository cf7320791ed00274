package status

import (
	"encoding/json"

	uuid "github.com/satori/go.uuid"
)

// JobDescriptor describes one not-yet-executed job awaiting its scheduled
// execution time. Serialized descriptors are the members of the schedule
// sorted set; only the ID field is significant to this layer, but the job
// runtime is free to carry whatever else it needs.
type JobDescriptor struct {
	ID    string   `json:"id"`
	Queue string   `json:"queue,omitempty"`
	Type  string   `json:"type,omitempty"`
	Args  []string `json:"args,omitempty"`
}

// NewJobDescriptor returns a new JobDescriptor with a unique ID.
func NewJobDescriptor(queue, jobType string, args []string) JobDescriptor {
	return JobDescriptor{
		ID:    uuid.NewV4().String(),
		Queue: queue,
		Type:  jobType,
		Args:  args,
	}
}

// JobDescriptorFromJSON returns a JobDescriptor unmarshalled from the
// provided []byte.
func JobDescriptorFromJSON(jsonBytes []byte) (JobDescriptor, error) {
	d := JobDescriptor{}
	if err := json.Unmarshal(jsonBytes, &d); err != nil {
		return d, err
	}
	return d, nil
}

// ToJSON returns a []byte containing a JSON representation of the
// JobDescriptor.
func (d JobDescriptor) ToJSON() ([]byte, error) {
	return json.Marshal(d)
}
