package api

import (
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Struct encodes r as a status detail.
func (r *Rejection) Struct() (*structpb.Struct, error) {
	fields := map[string]any{"reason": r.Reason}
	if r.Message != "" {
		fields["message"] = r.Message
	}
	if r.DistanceMeters != nil {
		fields["distance_meters"] = *r.DistanceMeters
	}
	if r.NearestLocationID != nil {
		fields["nearest_location_id"] = float64(*r.NearestLocationID)
	}
	if r.BiometricDistance != nil {
		fields["biometric_distance"] = *r.BiometricDistance
	}
	return structpb.NewStruct(fields)
}

// RejectionFromError extracts the rejection detail from a gRPC error.
func RejectionFromError(err error) (*Rejection, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}

	for _, d := range st.Details() {
		s, ok := d.(*structpb.Struct)
		if !ok {
			continue
		}
		m := s.GetFields()
		reason := m["reason"].GetStringValue()
		if reason == "" {
			continue
		}

		r := &Rejection{Reason: reason, Message: m["message"].GetStringValue()}
		if v, ok := m["distance_meters"]; ok {
			f := v.GetNumberValue()
			r.DistanceMeters = &f
		}
		if v, ok := m["nearest_location_id"]; ok {
			id := int64(v.GetNumberValue())
			r.NearestLocationID = &id
		}
		if v, ok := m["biometric_distance"]; ok {
			f := v.GetNumberValue()
			r.BiometricDistance = &f
		}
		return r, true
	}
	return nil, false
}
