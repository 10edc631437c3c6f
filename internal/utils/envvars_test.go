package utils

import (
	"reflect"
	"testing"
)

func TestMergeEnv(t *testing.T) {
	tests := []struct {
		name   string
		inputs []map[string]string
		want   []EnvVar
	}{
		{
			name: "single map sorted by key",
			inputs: []map[string]string{
				{"TF_VAR_region": "us-central1", "TF_VAR_project_id": "tasky-demo-project"},
			},
			want: []EnvVar{
				{Key: "TF_VAR_project_id", Value: "tasky-demo-project"},
				{Key: "TF_VAR_region", Value: "us-central1"},
			},
		},
		{
			name: "merge two maps - override wins",
			inputs: []map[string]string{
				{"TF_VAR_region": "us-central1", "TF_VAR_project_id": "tasky-demo-project"},
				{"TF_VAR_region": "europe-west1", "TF_VAR_project_number": "123456789012"},
			},
			want: []EnvVar{
				{Key: "TF_VAR_project_id", Value: "tasky-demo-project"},
				{Key: "TF_VAR_project_number", Value: "123456789012"},
				{Key: "TF_VAR_region", Value: "europe-west1"},
			},
		},
		{
			name:   "empty maps",
			inputs: []map[string]string{},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeEnv(tt.inputs...)

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}
