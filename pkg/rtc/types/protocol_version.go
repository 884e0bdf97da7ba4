package types

type ProtocolVersion int

const DefaultProtocol ProtocolVersion = 9

func (v ProtocolVersion) SupportsPackedStreamId() bool {
	return v > 0
}

// HandlesDataPackets reports whether user data is sent wrapped in DataPackets on the
// reserved reliable/lossy channels.
func (v ProtocolVersion) HandlesDataPackets() bool {
	return v > 1
}

func (v ProtocolVersion) SupportsSubscriptionResponse() bool {
	return v > 8
}
