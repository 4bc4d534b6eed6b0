package wire

import (
	"reflect"

	"github.com/outofforest/proton"
	"github.com/outofforest/proton/helpers"
	"github.com/pkg/errors"
)

const (
	id20 uint64 = iota + 1
	id19
	id17
	id15
	id14
	id12
	id9
	id7
	id5
	id2
	id0
)

var _ proton.Marshaller = Marshaller{}

// NewMarshaller creates marshaller.
func NewMarshaller() Marshaller {
	return Marshaller{}
}

// Marshaller marshals and unmarshals messages.
type Marshaller struct {
}

// Messages returns list of the message types supported by marshaller.
func (m Marshaller) Messages() []any {
	return []any{
		DiscoveryRequest{},
		DiscoveryResponse{},
		StatusMessage{},
		CollectionInformationRequest{},
		CollectionInformationResponse{},
		ManageCollectionSubscriptionRequest{},
		ManageCollectionSubscriptionResponse{},
		InboxMessage{},
		PollRequest{},
		PollResponse{},
		PollFulfillmentRequest{},
	}
}

// ID returns ID of message type.
func (m Marshaller) ID(msg any) (uint64, error) {
	switch msg.(type) {
	case *DiscoveryRequest:
		return id20, nil
	case *DiscoveryResponse:
		return id19, nil
	case *StatusMessage:
		return id17, nil
	case *CollectionInformationRequest:
		return id15, nil
	case *CollectionInformationResponse:
		return id14, nil
	case *ManageCollectionSubscriptionRequest:
		return id12, nil
	case *ManageCollectionSubscriptionResponse:
		return id9, nil
	case *InboxMessage:
		return id7, nil
	case *PollRequest:
		return id5, nil
	case *PollResponse:
		return id2, nil
	case *PollFulfillmentRequest:
		return id0, nil
	default:
		return 0, errors.Errorf("unknown message type %T", msg)
	}
}

// Size computes the size of marshalled message.
func (m Marshaller) Size(msg any) (uint64, error) {
	switch msg2 := msg.(type) {
	case *DiscoveryRequest:
		return size20(msg2), nil
	case *DiscoveryResponse:
		return size19(msg2), nil
	case *StatusMessage:
		return size17(msg2), nil
	case *CollectionInformationRequest:
		return size15(msg2), nil
	case *CollectionInformationResponse:
		return size14(msg2), nil
	case *ManageCollectionSubscriptionRequest:
		return size12(msg2), nil
	case *ManageCollectionSubscriptionResponse:
		return size9(msg2), nil
	case *InboxMessage:
		return size7(msg2), nil
	case *PollRequest:
		return size5(msg2), nil
	case *PollResponse:
		return size2(msg2), nil
	case *PollFulfillmentRequest:
		return size0(msg2), nil
	default:
		return 0, errors.Errorf("unknown message type %T", msg)
	}
}

// Marshal marshals message.
func (m Marshaller) Marshal(msg any, buf []byte) (retID, retSize uint64, retErr error) {
	defer helpers.RecoverMarshal(&retErr)

	switch msg2 := msg.(type) {
	case *DiscoveryRequest:
		return id20, marshal20(msg2, buf), nil
	case *DiscoveryResponse:
		return id19, marshal19(msg2, buf), nil
	case *StatusMessage:
		return id17, marshal17(msg2, buf), nil
	case *CollectionInformationRequest:
		return id15, marshal15(msg2, buf), nil
	case *CollectionInformationResponse:
		return id14, marshal14(msg2, buf), nil
	case *ManageCollectionSubscriptionRequest:
		return id12, marshal12(msg2, buf), nil
	case *ManageCollectionSubscriptionResponse:
		return id9, marshal9(msg2, buf), nil
	case *InboxMessage:
		return id7, marshal7(msg2, buf), nil
	case *PollRequest:
		return id5, marshal5(msg2, buf), nil
	case *PollResponse:
		return id2, marshal2(msg2, buf), nil
	case *PollFulfillmentRequest:
		return id0, marshal0(msg2, buf), nil
	default:
		return 0, 0, errors.Errorf("unknown message type %T", msg)
	}
}

// Unmarshal unmarshals message.
func (m Marshaller) Unmarshal(id uint64, buf []byte) (retMsg any, retSize uint64, retErr error) {
	defer helpers.RecoverUnmarshal(&retErr)

	switch id {
	case id20:
		msg := &DiscoveryRequest{}
		return msg, unmarshal20(msg, buf), nil
	case id19:
		msg := &DiscoveryResponse{}
		return msg, unmarshal19(msg, buf), nil
	case id17:
		msg := &StatusMessage{}
		return msg, unmarshal17(msg, buf), nil
	case id15:
		msg := &CollectionInformationRequest{}
		return msg, unmarshal15(msg, buf), nil
	case id14:
		msg := &CollectionInformationResponse{}
		return msg, unmarshal14(msg, buf), nil
	case id12:
		msg := &ManageCollectionSubscriptionRequest{}
		return msg, unmarshal12(msg, buf), nil
	case id9:
		msg := &ManageCollectionSubscriptionResponse{}
		return msg, unmarshal9(msg, buf), nil
	case id7:
		msg := &InboxMessage{}
		return msg, unmarshal7(msg, buf), nil
	case id5:
		msg := &PollRequest{}
		return msg, unmarshal5(msg, buf), nil
	case id2:
		msg := &PollResponse{}
		return msg, unmarshal2(msg, buf), nil
	case id0:
		msg := &PollFulfillmentRequest{}
		return msg, unmarshal0(msg, buf), nil
	default:
		return nil, 0, errors.Errorf("unknown ID %d", id)
	}
}

// MakePatch creates a patch.
func (m Marshaller) MakePatch(msgDst, msgSrc any, buf []byte) (retID, retSize uint64, retErr error) {
	defer helpers.RecoverMakePatch(&retErr)

	switch msg2 := msgDst.(type) {
	case *DiscoveryRequest:
		return id20, makePatch20(msg2, msgSrc.(*DiscoveryRequest), buf), nil
	case *DiscoveryResponse:
		return id19, makePatch19(msg2, msgSrc.(*DiscoveryResponse), buf), nil
	case *StatusMessage:
		return id17, makePatch17(msg2, msgSrc.(*StatusMessage), buf), nil
	case *CollectionInformationRequest:
		return id15, makePatch15(msg2, msgSrc.(*CollectionInformationRequest), buf), nil
	case *CollectionInformationResponse:
		return id14, makePatch14(msg2, msgSrc.(*CollectionInformationResponse), buf), nil
	case *ManageCollectionSubscriptionRequest:
		return id12, makePatch12(msg2, msgSrc.(*ManageCollectionSubscriptionRequest), buf), nil
	case *ManageCollectionSubscriptionResponse:
		return id9, makePatch9(msg2, msgSrc.(*ManageCollectionSubscriptionResponse), buf), nil
	case *InboxMessage:
		return id7, makePatch7(msg2, msgSrc.(*InboxMessage), buf), nil
	case *PollRequest:
		return id5, makePatch5(msg2, msgSrc.(*PollRequest), buf), nil
	case *PollResponse:
		return id2, makePatch2(msg2, msgSrc.(*PollResponse), buf), nil
	case *PollFulfillmentRequest:
		return id0, makePatch0(msg2, msgSrc.(*PollFulfillmentRequest), buf), nil
	default:
		return 0, 0, errors.Errorf("unknown message type %T", msgDst)
	}
}

// ApplyPatch applies patch.
func (m Marshaller) ApplyPatch(msg any, buf []byte) (retSize uint64, retErr error) {
	defer helpers.RecoverApplyPatch(&retErr)

	switch msg2 := msg.(type) {
	case *DiscoveryRequest:
		return applyPatch20(msg2, buf), nil
	case *DiscoveryResponse:
		return applyPatch19(msg2, buf), nil
	case *StatusMessage:
		return applyPatch17(msg2, buf), nil
	case *CollectionInformationRequest:
		return applyPatch15(msg2, buf), nil
	case *CollectionInformationResponse:
		return applyPatch14(msg2, buf), nil
	case *ManageCollectionSubscriptionRequest:
		return applyPatch12(msg2, buf), nil
	case *ManageCollectionSubscriptionResponse:
		return applyPatch9(msg2, buf), nil
	case *InboxMessage:
		return applyPatch7(msg2, buf), nil
	case *PollRequest:
		return applyPatch5(msg2, buf), nil
	case *PollResponse:
		return applyPatch2(msg2, buf), nil
	case *PollFulfillmentRequest:
		return applyPatch0(msg2, buf), nil
	default:
		return 0, errors.Errorf("unknown message type %T", msg)
	}
}

func size0(m *PollFulfillmentRequest) uint64 {
	var n uint64 = 4
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// CollectionName

		{
			l := uint64(len(m.CollectionName))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// ResultID

		{
			l := uint64(len(m.ResultID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// ResultPartNumber

		helpers.UInt64Size(m.ResultPartNumber, &n)
	}
	return n
}

func marshal0(m *PollFulfillmentRequest, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.MessageID)
			o += l
		}
	}
	{
		// CollectionName

		{
			l := uint64(len(m.CollectionName))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.CollectionName)
			o += l
		}
	}
	{
		// ResultID

		{
			l := uint64(len(m.ResultID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.ResultID)
			o += l
		}
	}
	{
		// ResultPartNumber

		helpers.UInt64Marshal(m.ResultPartNumber, b, &o)
	}

	return o
}

func unmarshal0(m *PollFulfillmentRequest, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.MessageID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// CollectionName

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.CollectionName = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// ResultID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.ResultID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// ResultPartNumber

		helpers.UInt64Unmarshal(&m.ResultPartNumber, b, &o)
	}

	return o
}

func makePatch0(m, mSrc *PollFulfillmentRequest, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if reflect.DeepEqual(m.MessageID, mSrc.MessageID) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			{
				l := uint64(len(m.MessageID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.MessageID)
				o += l
			}
		}
	}
	{
		// CollectionName

		if reflect.DeepEqual(m.CollectionName, mSrc.CollectionName) {
			b[0] &= 0xFD
		} else {
			b[0] |= 0x02
			{
				l := uint64(len(m.CollectionName))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.CollectionName)
				o += l
			}
		}
	}
	{
		// ResultID

		if reflect.DeepEqual(m.ResultID, mSrc.ResultID) {
			b[0] &= 0xFB
		} else {
			b[0] |= 0x04
			{
				l := uint64(len(m.ResultID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.ResultID)
				o += l
			}
		}
	}
	{
		// ResultPartNumber

		if reflect.DeepEqual(m.ResultPartNumber, mSrc.ResultPartNumber) {
			b[0] &= 0xF7
		} else {
			b[0] |= 0x08
			helpers.UInt64Marshal(m.ResultPartNumber, b, &o)
		}
	}

	return o
}

func applyPatch0(m *PollFulfillmentRequest, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if b[0]&0x01 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.MessageID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// CollectionName

		if b[0]&0x02 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.CollectionName = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// ResultID

		if b[0]&0x04 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.ResultID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// ResultPartNumber

		if b[0]&0x08 != 0 {
			helpers.UInt64Unmarshal(&m.ResultPartNumber, b, &o)
		}
	}

	return o
}

func size2(m *PollResponse) uint64 {
	var n uint64 = 12
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// InResponseTo

		{
			l := uint64(len(m.InResponseTo))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// CollectionName

		{
			l := uint64(len(m.CollectionName))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// SubscriptionID

		{
			l := uint64(len(m.SubscriptionID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// ExclusiveBeginTimestamp

		{
			l := uint64(len(m.ExclusiveBeginTimestamp))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// InclusiveEndTimestamp

		{
			l := uint64(len(m.InclusiveEndTimestamp))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// ResultID

		{
			l := uint64(len(m.ResultID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// ResultPartNumber

		helpers.UInt64Size(m.ResultPartNumber, &n)
	}
	{
		// RecordCount

		helpers.UInt64Size(m.RecordCount, &n)
	}
	{
		// Message

		{
			l := uint64(len(m.Message))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// ContentBlocks

		l := uint64(len(m.ContentBlocks))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.ContentBlocks {
			n += size1(&sv1)
		}
	}
	return n
}

func marshal2(m *PollResponse, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.MessageID)
			o += l
		}
	}
	{
		// InResponseTo

		{
			l := uint64(len(m.InResponseTo))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.InResponseTo)
			o += l
		}
	}
	{
		// CollectionName

		{
			l := uint64(len(m.CollectionName))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.CollectionName)
			o += l
		}
	}
	{
		// SubscriptionID

		{
			l := uint64(len(m.SubscriptionID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.SubscriptionID)
			o += l
		}
	}
	{
		// ExclusiveBeginTimestamp

		{
			l := uint64(len(m.ExclusiveBeginTimestamp))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.ExclusiveBeginTimestamp)
			o += l
		}
	}
	{
		// InclusiveEndTimestamp

		{
			l := uint64(len(m.InclusiveEndTimestamp))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.InclusiveEndTimestamp)
			o += l
		}
	}
	{
		// More

		if m.More {
			b[0] |= 0x01
		} else {
			b[0] &= 0xFE
		}
	}
	{
		// ResultID

		{
			l := uint64(len(m.ResultID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.ResultID)
			o += l
		}
	}
	{
		// ResultPartNumber

		helpers.UInt64Marshal(m.ResultPartNumber, b, &o)
	}
	{
		// RecordCount

		helpers.UInt64Marshal(m.RecordCount, b, &o)
	}
	{
		// PartialCount

		if m.PartialCount {
			b[0] |= 0x02
		} else {
			b[0] &= 0xFD
		}
	}
	{
		// Message

		{
			l := uint64(len(m.Message))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Message)
			o += l
		}
	}
	{
		// ContentBlocks

		helpers.UInt64Marshal(uint64(len(m.ContentBlocks)), b, &o)
		for _, sv1 := range m.ContentBlocks {
			o += marshal1(&sv1, b[o:])
		}
	}

	return o
}

func unmarshal2(m *PollResponse, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.MessageID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// InResponseTo

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.InResponseTo = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// CollectionName

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.CollectionName = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// SubscriptionID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.SubscriptionID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// ExclusiveBeginTimestamp

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.ExclusiveBeginTimestamp = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// InclusiveEndTimestamp

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.InclusiveEndTimestamp = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// More

		m.More = b[0]&0x01 != 0
	}
	{
		// ResultID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.ResultID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// ResultPartNumber

		helpers.UInt64Unmarshal(&m.ResultPartNumber, b, &o)
	}
	{
		// RecordCount

		helpers.UInt64Unmarshal(&m.RecordCount, b, &o)
	}
	{
		// PartialCount

		m.PartialCount = b[0]&0x02 != 0
	}
	{
		// Message

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Message = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// ContentBlocks

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.ContentBlocks = make([]ContentBlock, l)
			for i1 := range l {
				o += unmarshal1(&m.ContentBlocks[i1], b[o:])
			}
		}
	}

	return o
}

func makePatch2(m, mSrc *PollResponse, b []byte) uint64 {
	var o uint64 = 3
	{
		// MessageID

		if reflect.DeepEqual(m.MessageID, mSrc.MessageID) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			{
				l := uint64(len(m.MessageID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.MessageID)
				o += l
			}
		}
	}
	{
		// InResponseTo

		if reflect.DeepEqual(m.InResponseTo, mSrc.InResponseTo) {
			b[0] &= 0xFD
		} else {
			b[0] |= 0x02
			{
				l := uint64(len(m.InResponseTo))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.InResponseTo)
				o += l
			}
		}
	}
	{
		// CollectionName

		if reflect.DeepEqual(m.CollectionName, mSrc.CollectionName) {
			b[0] &= 0xFB
		} else {
			b[0] |= 0x04
			{
				l := uint64(len(m.CollectionName))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.CollectionName)
				o += l
			}
		}
	}
	{
		// SubscriptionID

		if reflect.DeepEqual(m.SubscriptionID, mSrc.SubscriptionID) {
			b[0] &= 0xF7
		} else {
			b[0] |= 0x08
			{
				l := uint64(len(m.SubscriptionID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.SubscriptionID)
				o += l
			}
		}
	}
	{
		// ExclusiveBeginTimestamp

		if reflect.DeepEqual(m.ExclusiveBeginTimestamp, mSrc.ExclusiveBeginTimestamp) {
			b[0] &= 0xEF
		} else {
			b[0] |= 0x10
			{
				l := uint64(len(m.ExclusiveBeginTimestamp))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.ExclusiveBeginTimestamp)
				o += l
			}
		}
	}
	{
		// InclusiveEndTimestamp

		if reflect.DeepEqual(m.InclusiveEndTimestamp, mSrc.InclusiveEndTimestamp) {
			b[0] &= 0xDF
		} else {
			b[0] |= 0x20
			{
				l := uint64(len(m.InclusiveEndTimestamp))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.InclusiveEndTimestamp)
				o += l
			}
		}
	}
	{
		// More

		if m.More == mSrc.More {
			b[2] &= 0xFE
		} else {
			b[2] |= 0x01
		}
	}
	{
		// ResultID

		if reflect.DeepEqual(m.ResultID, mSrc.ResultID) {
			b[0] &= 0xBF
		} else {
			b[0] |= 0x40
			{
				l := uint64(len(m.ResultID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.ResultID)
				o += l
			}
		}
	}
	{
		// ResultPartNumber

		if reflect.DeepEqual(m.ResultPartNumber, mSrc.ResultPartNumber) {
			b[0] &= 0x7F
		} else {
			b[0] |= 0x80
			helpers.UInt64Marshal(m.ResultPartNumber, b, &o)
		}
	}
	{
		// RecordCount

		if reflect.DeepEqual(m.RecordCount, mSrc.RecordCount) {
			b[1] &= 0xFE
		} else {
			b[1] |= 0x01
			helpers.UInt64Marshal(m.RecordCount, b, &o)
		}
	}
	{
		// PartialCount

		if m.PartialCount == mSrc.PartialCount {
			b[2] &= 0xFD
		} else {
			b[2] |= 0x02
		}
	}
	{
		// Message

		if reflect.DeepEqual(m.Message, mSrc.Message) {
			b[1] &= 0xFD
		} else {
			b[1] |= 0x02
			{
				l := uint64(len(m.Message))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.Message)
				o += l
			}
		}
	}
	{
		// ContentBlocks

		if reflect.DeepEqual(m.ContentBlocks, mSrc.ContentBlocks) {
			b[1] &= 0xFB
		} else {
			b[1] |= 0x04
			helpers.UInt64Marshal(uint64(len(m.ContentBlocks)), b, &o)
			for _, sv1 := range m.ContentBlocks {
				o += marshal1(&sv1, b[o:])
			}
		}
	}

	return o
}

func applyPatch2(m *PollResponse, b []byte) uint64 {
	var o uint64 = 3
	{
		// MessageID

		if b[0]&0x01 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.MessageID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// InResponseTo

		if b[0]&0x02 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.InResponseTo = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// CollectionName

		if b[0]&0x04 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.CollectionName = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// SubscriptionID

		if b[0]&0x08 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.SubscriptionID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// ExclusiveBeginTimestamp

		if b[0]&0x10 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.ExclusiveBeginTimestamp = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// InclusiveEndTimestamp

		if b[0]&0x20 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.InclusiveEndTimestamp = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// More

		if b[2]&0x01 != 0 {
			m.More = !m.More
		}
	}
	{
		// ResultID

		if b[0]&0x40 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.ResultID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// ResultPartNumber

		if b[0]&0x80 != 0 {
			helpers.UInt64Unmarshal(&m.ResultPartNumber, b, &o)
		}
	}
	{
		// RecordCount

		if b[1]&0x01 != 0 {
			helpers.UInt64Unmarshal(&m.RecordCount, b, &o)
		}
	}
	{
		// PartialCount

		if b[2]&0x02 != 0 {
			m.PartialCount = !m.PartialCount
		}
	}
	{
		// Message

		if b[1]&0x02 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.Message = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// ContentBlocks

		if b[1]&0x04 != 0 {
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.ContentBlocks = make([]ContentBlock, l)
				for i1 := range l {
					o += unmarshal1(&m.ContentBlocks[i1], b[o:])
				}
			}
		}
	}

	return o
}

func size1(m *ContentBlock) uint64 {
	var n uint64 = 4
	{
		// Binding

		n += size3(&m.Binding)
	}
	{
		// Content

		{
			l := uint64(len(m.Content))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// TimestampLabel

		{
			l := uint64(len(m.TimestampLabel))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Message

		{
			l := uint64(len(m.Message))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Signature

		{
			l := uint64(len(m.Signature))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	return n
}

func marshal1(m *ContentBlock, b []byte) uint64 {
	var o uint64
	{
		// Binding

		o += marshal3(&m.Binding, b[o:])
	}
	{
		// Content

		{
			l := uint64(len(m.Content))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Content)
			o += l
		}
	}
	{
		// TimestampLabel

		{
			l := uint64(len(m.TimestampLabel))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.TimestampLabel)
			o += l
		}
	}
	{
		// Message

		{
			l := uint64(len(m.Message))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Message)
			o += l
		}
	}
	{
		// Signature

		{
			l := uint64(len(m.Signature))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Signature)
			o += l
		}
	}

	return o
}

func unmarshal1(m *ContentBlock, b []byte) uint64 {
	var o uint64
	{
		// Binding

		o += unmarshal3(&m.Binding, b[o:])
	}
	{
		// Content

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Content = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// TimestampLabel

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.TimestampLabel = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Message

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Message = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Signature

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Signature = string(b[o : o+l])
				o += l
			}
		}
	}

	return o
}

func size3(m *ContentBinding) uint64 {
	var n uint64 = 2
	{
		// BindingID

		{
			l := uint64(len(m.BindingID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// SubtypeIDs

		l := uint64(len(m.SubtypeIDs))
		helpers.UInt64Size(l, &n)
		n += l
		for _, sv1 := range m.SubtypeIDs {
			{
				l := uint64(len(sv1))
				helpers.UInt64Size(l, &n)
				n += l
			}
		}
	}
	return n
}

func marshal3(m *ContentBinding, b []byte) uint64 {
	var o uint64
	{
		// BindingID

		{
			l := uint64(len(m.BindingID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.BindingID)
			o += l
		}
	}
	{
		// SubtypeIDs

		helpers.UInt64Marshal(uint64(len(m.SubtypeIDs)), b, &o)
		for _, sv1 := range m.SubtypeIDs {
			{
				l := uint64(len(sv1))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], sv1)
				o += l
			}
		}
	}

	return o
}

func unmarshal3(m *ContentBinding, b []byte) uint64 {
	var o uint64
	{
		// BindingID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.BindingID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// SubtypeIDs

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.SubtypeIDs = make([]string, l)
			for i1 := range l {
				{
					var l uint64
					helpers.UInt64Unmarshal(&l, b, &o)
					if l > 0 {
						m.SubtypeIDs[i1] = string(b[o : o+l])
						o += l
					}
				}
			}
		}
	}

	return o
}

func size5(m *PollRequest) uint64 {
	var n uint64 = 5
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// CollectionName

		{
			l := uint64(len(m.CollectionName))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// ExclusiveBeginTimestamp

		{
			l := uint64(len(m.ExclusiveBeginTimestamp))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// InclusiveEndTimestamp

		{
			l := uint64(len(m.InclusiveEndTimestamp))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// SubscriptionID

		{
			l := uint64(len(m.SubscriptionID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Parameters

		n += size4(&m.Parameters)
	}
	return n
}

func marshal5(m *PollRequest, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.MessageID)
			o += l
		}
	}
	{
		// CollectionName

		{
			l := uint64(len(m.CollectionName))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.CollectionName)
			o += l
		}
	}
	{
		// ExclusiveBeginTimestamp

		{
			l := uint64(len(m.ExclusiveBeginTimestamp))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.ExclusiveBeginTimestamp)
			o += l
		}
	}
	{
		// InclusiveEndTimestamp

		{
			l := uint64(len(m.InclusiveEndTimestamp))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.InclusiveEndTimestamp)
			o += l
		}
	}
	{
		// SubscriptionID

		{
			l := uint64(len(m.SubscriptionID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.SubscriptionID)
			o += l
		}
	}
	{
		// Parameters

		o += marshal4(&m.Parameters, b[o:])
	}

	return o
}

func unmarshal5(m *PollRequest, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.MessageID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// CollectionName

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.CollectionName = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// ExclusiveBeginTimestamp

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.ExclusiveBeginTimestamp = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// InclusiveEndTimestamp

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.InclusiveEndTimestamp = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// SubscriptionID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.SubscriptionID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Parameters

		o += unmarshal4(&m.Parameters, b[o:])
	}

	return o
}

func makePatch5(m, mSrc *PollRequest, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if reflect.DeepEqual(m.MessageID, mSrc.MessageID) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			{
				l := uint64(len(m.MessageID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.MessageID)
				o += l
			}
		}
	}
	{
		// CollectionName

		if reflect.DeepEqual(m.CollectionName, mSrc.CollectionName) {
			b[0] &= 0xFD
		} else {
			b[0] |= 0x02
			{
				l := uint64(len(m.CollectionName))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.CollectionName)
				o += l
			}
		}
	}
	{
		// ExclusiveBeginTimestamp

		if reflect.DeepEqual(m.ExclusiveBeginTimestamp, mSrc.ExclusiveBeginTimestamp) {
			b[0] &= 0xFB
		} else {
			b[0] |= 0x04
			{
				l := uint64(len(m.ExclusiveBeginTimestamp))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.ExclusiveBeginTimestamp)
				o += l
			}
		}
	}
	{
		// InclusiveEndTimestamp

		if reflect.DeepEqual(m.InclusiveEndTimestamp, mSrc.InclusiveEndTimestamp) {
			b[0] &= 0xF7
		} else {
			b[0] |= 0x08
			{
				l := uint64(len(m.InclusiveEndTimestamp))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.InclusiveEndTimestamp)
				o += l
			}
		}
	}
	{
		// SubscriptionID

		if reflect.DeepEqual(m.SubscriptionID, mSrc.SubscriptionID) {
			b[0] &= 0xEF
		} else {
			b[0] |= 0x10
			{
				l := uint64(len(m.SubscriptionID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.SubscriptionID)
				o += l
			}
		}
	}
	{
		// Parameters

		if reflect.DeepEqual(m.Parameters, mSrc.Parameters) {
			b[0] &= 0xDF
		} else {
			b[0] |= 0x20
			o += marshal4(&m.Parameters, b[o:])
		}
	}

	return o
}

func applyPatch5(m *PollRequest, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if b[0]&0x01 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.MessageID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// CollectionName

		if b[0]&0x02 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.CollectionName = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// ExclusiveBeginTimestamp

		if b[0]&0x04 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.ExclusiveBeginTimestamp = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// InclusiveEndTimestamp

		if b[0]&0x08 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.InclusiveEndTimestamp = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// SubscriptionID

		if b[0]&0x10 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.SubscriptionID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// Parameters

		if b[0]&0x20 != 0 {
			o += unmarshal4(&m.Parameters, b[o:])
		}
	}

	return o
}

func size4(m *PollParameters) uint64 {
	var n uint64 = 3
	{
		// ResponseType

		{
			l := uint64(len(m.ResponseType))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// ContentBindings

		l := uint64(len(m.ContentBindings))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.ContentBindings {
			n += size3(&sv1)
		}
	}
	{
		// Delivery

		n += size6(&m.Delivery)
	}
	return n
}

func marshal4(m *PollParameters, b []byte) uint64 {
	var o uint64 = 1
	{
		// AllowAsynch

		if m.AllowAsynch {
			b[0] |= 0x01
		} else {
			b[0] &= 0xFE
		}
	}
	{
		// ResponseType

		{
			l := uint64(len(m.ResponseType))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.ResponseType)
			o += l
		}
	}
	{
		// ContentBindings

		helpers.UInt64Marshal(uint64(len(m.ContentBindings)), b, &o)
		for _, sv1 := range m.ContentBindings {
			o += marshal3(&sv1, b[o:])
		}
	}
	{
		// Delivery

		o += marshal6(&m.Delivery, b[o:])
	}

	return o
}

func unmarshal4(m *PollParameters, b []byte) uint64 {
	var o uint64 = 1
	{
		// AllowAsynch

		m.AllowAsynch = b[0]&0x01 != 0
	}
	{
		// ResponseType

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.ResponseType = ResponseType(b[o : o+l])
				o += l
			}
		}
	}
	{
		// ContentBindings

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.ContentBindings = make([]ContentBinding, l)
			for i1 := range l {
				o += unmarshal3(&m.ContentBindings[i1], b[o:])
			}
		}
	}
	{
		// Delivery

		o += unmarshal6(&m.Delivery, b[o:])
	}

	return o
}

func size6(m *PushParameters) uint64 {
	var n uint64 = 3
	{
		// InboxProtocol

		{
			l := uint64(len(m.InboxProtocol))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// InboxAddress

		{
			l := uint64(len(m.InboxAddress))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// DeliveryMessageBinding

		{
			l := uint64(len(m.DeliveryMessageBinding))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	return n
}

func marshal6(m *PushParameters, b []byte) uint64 {
	var o uint64
	{
		// InboxProtocol

		{
			l := uint64(len(m.InboxProtocol))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.InboxProtocol)
			o += l
		}
	}
	{
		// InboxAddress

		{
			l := uint64(len(m.InboxAddress))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.InboxAddress)
			o += l
		}
	}
	{
		// DeliveryMessageBinding

		{
			l := uint64(len(m.DeliveryMessageBinding))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.DeliveryMessageBinding)
			o += l
		}
	}

	return o
}

func unmarshal6(m *PushParameters, b []byte) uint64 {
	var o uint64
	{
		// InboxProtocol

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.InboxProtocol = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// InboxAddress

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.InboxAddress = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// DeliveryMessageBinding

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.DeliveryMessageBinding = string(b[o : o+l])
				o += l
			}
		}
	}

	return o
}

func size7(m *InboxMessage) uint64 {
	var n uint64 = 5
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// ResultID

		{
			l := uint64(len(m.ResultID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// DestinationCollectionNames

		l := uint64(len(m.DestinationCollectionNames))
		helpers.UInt64Size(l, &n)
		n += l
		for _, sv1 := range m.DestinationCollectionNames {
			{
				l := uint64(len(sv1))
				helpers.UInt64Size(l, &n)
				n += l
			}
		}
	}
	{
		// Message

		{
			l := uint64(len(m.Message))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// ContentBlocks

		l := uint64(len(m.ContentBlocks))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.ContentBlocks {
			n += size1(&sv1)
		}
	}
	return n
}

func marshal7(m *InboxMessage, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.MessageID)
			o += l
		}
	}
	{
		// ResultID

		{
			l := uint64(len(m.ResultID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.ResultID)
			o += l
		}
	}
	{
		// DestinationCollectionNames

		helpers.UInt64Marshal(uint64(len(m.DestinationCollectionNames)), b, &o)
		for _, sv1 := range m.DestinationCollectionNames {
			{
				l := uint64(len(sv1))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], sv1)
				o += l
			}
		}
	}
	{
		// Message

		{
			l := uint64(len(m.Message))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Message)
			o += l
		}
	}
	{
		// ContentBlocks

		helpers.UInt64Marshal(uint64(len(m.ContentBlocks)), b, &o)
		for _, sv1 := range m.ContentBlocks {
			o += marshal1(&sv1, b[o:])
		}
	}

	return o
}

func unmarshal7(m *InboxMessage, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.MessageID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// ResultID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.ResultID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// DestinationCollectionNames

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.DestinationCollectionNames = make([]string, l)
			for i1 := range l {
				{
					var l uint64
					helpers.UInt64Unmarshal(&l, b, &o)
					if l > 0 {
						m.DestinationCollectionNames[i1] = string(b[o : o+l])
						o += l
					}
				}
			}
		}
	}
	{
		// Message

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Message = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// ContentBlocks

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.ContentBlocks = make([]ContentBlock, l)
			for i1 := range l {
				o += unmarshal1(&m.ContentBlocks[i1], b[o:])
			}
		}
	}

	return o
}

func makePatch7(m, mSrc *InboxMessage, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if reflect.DeepEqual(m.MessageID, mSrc.MessageID) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			{
				l := uint64(len(m.MessageID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.MessageID)
				o += l
			}
		}
	}
	{
		// ResultID

		if reflect.DeepEqual(m.ResultID, mSrc.ResultID) {
			b[0] &= 0xFD
		} else {
			b[0] |= 0x02
			{
				l := uint64(len(m.ResultID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.ResultID)
				o += l
			}
		}
	}
	{
		// DestinationCollectionNames

		if reflect.DeepEqual(m.DestinationCollectionNames, mSrc.DestinationCollectionNames) {
			b[0] &= 0xFB
		} else {
			b[0] |= 0x04
			helpers.UInt64Marshal(uint64(len(m.DestinationCollectionNames)), b, &o)
			for _, sv1 := range m.DestinationCollectionNames {
				{
					l := uint64(len(sv1))
					helpers.UInt64Marshal(l, b, &o)
					copy(b[o:o+l], sv1)
					o += l
				}
			}
		}
	}
	{
		// Message

		if reflect.DeepEqual(m.Message, mSrc.Message) {
			b[0] &= 0xF7
		} else {
			b[0] |= 0x08
			{
				l := uint64(len(m.Message))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.Message)
				o += l
			}
		}
	}
	{
		// ContentBlocks

		if reflect.DeepEqual(m.ContentBlocks, mSrc.ContentBlocks) {
			b[0] &= 0xEF
		} else {
			b[0] |= 0x10
			helpers.UInt64Marshal(uint64(len(m.ContentBlocks)), b, &o)
			for _, sv1 := range m.ContentBlocks {
				o += marshal1(&sv1, b[o:])
			}
		}
	}

	return o
}

func applyPatch7(m *InboxMessage, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if b[0]&0x01 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.MessageID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// ResultID

		if b[0]&0x02 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.ResultID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// DestinationCollectionNames

		if b[0]&0x04 != 0 {
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.DestinationCollectionNames = make([]string, l)
				for i1 := range l {
					{
						var l uint64
						helpers.UInt64Unmarshal(&l, b, &o)
						if l > 0 {
							m.DestinationCollectionNames[i1] = string(b[o : o+l])
							o += l
						}
					}
				}
			}
		}
	}
	{
		// Message

		if b[0]&0x08 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.Message = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// ContentBlocks

		if b[0]&0x10 != 0 {
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.ContentBlocks = make([]ContentBlock, l)
				for i1 := range l {
					o += unmarshal1(&m.ContentBlocks[i1], b[o:])
				}
			}
		}
	}

	return o
}

func size9(m *ManageCollectionSubscriptionResponse) uint64 {
	var n uint64 = 5
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// InResponseTo

		{
			l := uint64(len(m.InResponseTo))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// CollectionName

		{
			l := uint64(len(m.CollectionName))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Message

		{
			l := uint64(len(m.Message))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Subscriptions

		l := uint64(len(m.Subscriptions))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.Subscriptions {
			n += size8(&sv1)
		}
	}
	return n
}

func marshal9(m *ManageCollectionSubscriptionResponse, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.MessageID)
			o += l
		}
	}
	{
		// InResponseTo

		{
			l := uint64(len(m.InResponseTo))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.InResponseTo)
			o += l
		}
	}
	{
		// CollectionName

		{
			l := uint64(len(m.CollectionName))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.CollectionName)
			o += l
		}
	}
	{
		// Message

		{
			l := uint64(len(m.Message))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Message)
			o += l
		}
	}
	{
		// Subscriptions

		helpers.UInt64Marshal(uint64(len(m.Subscriptions)), b, &o)
		for _, sv1 := range m.Subscriptions {
			o += marshal8(&sv1, b[o:])
		}
	}

	return o
}

func unmarshal9(m *ManageCollectionSubscriptionResponse, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.MessageID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// InResponseTo

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.InResponseTo = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// CollectionName

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.CollectionName = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Message

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Message = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Subscriptions

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.Subscriptions = make([]SubscriptionInstance, l)
			for i1 := range l {
				o += unmarshal8(&m.Subscriptions[i1], b[o:])
			}
		}
	}

	return o
}

func makePatch9(m, mSrc *ManageCollectionSubscriptionResponse, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if reflect.DeepEqual(m.MessageID, mSrc.MessageID) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			{
				l := uint64(len(m.MessageID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.MessageID)
				o += l
			}
		}
	}
	{
		// InResponseTo

		if reflect.DeepEqual(m.InResponseTo, mSrc.InResponseTo) {
			b[0] &= 0xFD
		} else {
			b[0] |= 0x02
			{
				l := uint64(len(m.InResponseTo))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.InResponseTo)
				o += l
			}
		}
	}
	{
		// CollectionName

		if reflect.DeepEqual(m.CollectionName, mSrc.CollectionName) {
			b[0] &= 0xFB
		} else {
			b[0] |= 0x04
			{
				l := uint64(len(m.CollectionName))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.CollectionName)
				o += l
			}
		}
	}
	{
		// Message

		if reflect.DeepEqual(m.Message, mSrc.Message) {
			b[0] &= 0xF7
		} else {
			b[0] |= 0x08
			{
				l := uint64(len(m.Message))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.Message)
				o += l
			}
		}
	}
	{
		// Subscriptions

		if reflect.DeepEqual(m.Subscriptions, mSrc.Subscriptions) {
			b[0] &= 0xEF
		} else {
			b[0] |= 0x10
			helpers.UInt64Marshal(uint64(len(m.Subscriptions)), b, &o)
			for _, sv1 := range m.Subscriptions {
				o += marshal8(&sv1, b[o:])
			}
		}
	}

	return o
}

func applyPatch9(m *ManageCollectionSubscriptionResponse, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if b[0]&0x01 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.MessageID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// InResponseTo

		if b[0]&0x02 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.InResponseTo = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// CollectionName

		if b[0]&0x04 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.CollectionName = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// Message

		if b[0]&0x08 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.Message = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// Subscriptions

		if b[0]&0x10 != 0 {
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Subscriptions = make([]SubscriptionInstance, l)
				for i1 := range l {
					o += unmarshal8(&m.Subscriptions[i1], b[o:])
				}
			}
		}
	}

	return o
}

func size8(m *SubscriptionInstance) uint64 {
	var n uint64 = 3
	{
		// SubscriptionID

		{
			l := uint64(len(m.SubscriptionID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Status

		{
			l := uint64(len(m.Status))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Parameters

		n += size10(&m.Parameters)
	}
	{
		// Push

		n += size6(&m.Push)
	}
	{
		// PollInstances

		l := uint64(len(m.PollInstances))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.PollInstances {
			n += size11(&sv1)
		}
	}
	return n
}

func marshal8(m *SubscriptionInstance, b []byte) uint64 {
	var o uint64
	{
		// SubscriptionID

		{
			l := uint64(len(m.SubscriptionID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.SubscriptionID)
			o += l
		}
	}
	{
		// Status

		{
			l := uint64(len(m.Status))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Status)
			o += l
		}
	}
	{
		// Parameters

		o += marshal10(&m.Parameters, b[o:])
	}
	{
		// Push

		o += marshal6(&m.Push, b[o:])
	}
	{
		// PollInstances

		helpers.UInt64Marshal(uint64(len(m.PollInstances)), b, &o)
		for _, sv1 := range m.PollInstances {
			o += marshal11(&sv1, b[o:])
		}
	}

	return o
}

func unmarshal8(m *SubscriptionInstance, b []byte) uint64 {
	var o uint64
	{
		// SubscriptionID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.SubscriptionID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Status

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Status = SubscriptionStatus(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Parameters

		o += unmarshal10(&m.Parameters, b[o:])
	}
	{
		// Push

		o += unmarshal6(&m.Push, b[o:])
	}
	{
		// PollInstances

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.PollInstances = make([]ServiceEndpoint, l)
			for i1 := range l {
				o += unmarshal11(&m.PollInstances[i1], b[o:])
			}
		}
	}

	return o
}

func size11(m *ServiceEndpoint) uint64 {
	var n uint64 = 4
	{
		// ProtocolBinding

		{
			l := uint64(len(m.ProtocolBinding))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Address

		{
			l := uint64(len(m.Address))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// MessageBindings

		l := uint64(len(m.MessageBindings))
		helpers.UInt64Size(l, &n)
		n += l
		for _, sv1 := range m.MessageBindings {
			{
				l := uint64(len(sv1))
				helpers.UInt64Size(l, &n)
				n += l
			}
		}
	}
	{
		// ContentBindings

		l := uint64(len(m.ContentBindings))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.ContentBindings {
			n += size3(&sv1)
		}
	}
	return n
}

func marshal11(m *ServiceEndpoint, b []byte) uint64 {
	var o uint64
	{
		// ProtocolBinding

		{
			l := uint64(len(m.ProtocolBinding))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.ProtocolBinding)
			o += l
		}
	}
	{
		// Address

		{
			l := uint64(len(m.Address))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Address)
			o += l
		}
	}
	{
		// MessageBindings

		helpers.UInt64Marshal(uint64(len(m.MessageBindings)), b, &o)
		for _, sv1 := range m.MessageBindings {
			{
				l := uint64(len(sv1))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], sv1)
				o += l
			}
		}
	}
	{
		// ContentBindings

		helpers.UInt64Marshal(uint64(len(m.ContentBindings)), b, &o)
		for _, sv1 := range m.ContentBindings {
			o += marshal3(&sv1, b[o:])
		}
	}

	return o
}

func unmarshal11(m *ServiceEndpoint, b []byte) uint64 {
	var o uint64
	{
		// ProtocolBinding

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.ProtocolBinding = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Address

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Address = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// MessageBindings

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.MessageBindings = make([]string, l)
			for i1 := range l {
				{
					var l uint64
					helpers.UInt64Unmarshal(&l, b, &o)
					if l > 0 {
						m.MessageBindings[i1] = string(b[o : o+l])
						o += l
					}
				}
			}
		}
	}
	{
		// ContentBindings

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.ContentBindings = make([]ContentBinding, l)
			for i1 := range l {
				o += unmarshal3(&m.ContentBindings[i1], b[o:])
			}
		}
	}

	return o
}

func size10(m *SubscriptionParameters) uint64 {
	var n uint64 = 2
	{
		// ResponseType

		{
			l := uint64(len(m.ResponseType))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// ContentBindings

		l := uint64(len(m.ContentBindings))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.ContentBindings {
			n += size3(&sv1)
		}
	}
	return n
}

func marshal10(m *SubscriptionParameters, b []byte) uint64 {
	var o uint64
	{
		// ResponseType

		{
			l := uint64(len(m.ResponseType))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.ResponseType)
			o += l
		}
	}
	{
		// ContentBindings

		helpers.UInt64Marshal(uint64(len(m.ContentBindings)), b, &o)
		for _, sv1 := range m.ContentBindings {
			o += marshal3(&sv1, b[o:])
		}
	}

	return o
}

func unmarshal10(m *SubscriptionParameters, b []byte) uint64 {
	var o uint64
	{
		// ResponseType

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.ResponseType = ResponseType(b[o : o+l])
				o += l
			}
		}
	}
	{
		// ContentBindings

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.ContentBindings = make([]ContentBinding, l)
			for i1 := range l {
				o += unmarshal3(&m.ContentBindings[i1], b[o:])
			}
		}
	}

	return o
}

func size12(m *ManageCollectionSubscriptionRequest) uint64 {
	var n uint64 = 4
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// CollectionName

		{
			l := uint64(len(m.CollectionName))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Action

		{
			l := uint64(len(m.Action))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// SubscriptionID

		{
			l := uint64(len(m.SubscriptionID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Parameters

		n += size10(&m.Parameters)
	}
	{
		// Push

		n += size6(&m.Push)
	}
	return n
}

func marshal12(m *ManageCollectionSubscriptionRequest, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.MessageID)
			o += l
		}
	}
	{
		// CollectionName

		{
			l := uint64(len(m.CollectionName))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.CollectionName)
			o += l
		}
	}
	{
		// Action

		{
			l := uint64(len(m.Action))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Action)
			o += l
		}
	}
	{
		// SubscriptionID

		{
			l := uint64(len(m.SubscriptionID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.SubscriptionID)
			o += l
		}
	}
	{
		// Parameters

		o += marshal10(&m.Parameters, b[o:])
	}
	{
		// Push

		o += marshal6(&m.Push, b[o:])
	}

	return o
}

func unmarshal12(m *ManageCollectionSubscriptionRequest, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.MessageID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// CollectionName

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.CollectionName = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Action

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Action = Action(b[o : o+l])
				o += l
			}
		}
	}
	{
		// SubscriptionID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.SubscriptionID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Parameters

		o += unmarshal10(&m.Parameters, b[o:])
	}
	{
		// Push

		o += unmarshal6(&m.Push, b[o:])
	}

	return o
}

func makePatch12(m, mSrc *ManageCollectionSubscriptionRequest, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if reflect.DeepEqual(m.MessageID, mSrc.MessageID) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			{
				l := uint64(len(m.MessageID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.MessageID)
				o += l
			}
		}
	}
	{
		// CollectionName

		if reflect.DeepEqual(m.CollectionName, mSrc.CollectionName) {
			b[0] &= 0xFD
		} else {
			b[0] |= 0x02
			{
				l := uint64(len(m.CollectionName))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.CollectionName)
				o += l
			}
		}
	}
	{
		// Action

		if reflect.DeepEqual(m.Action, mSrc.Action) {
			b[0] &= 0xFB
		} else {
			b[0] |= 0x04
			{
				l := uint64(len(m.Action))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.Action)
				o += l
			}
		}
	}
	{
		// SubscriptionID

		if reflect.DeepEqual(m.SubscriptionID, mSrc.SubscriptionID) {
			b[0] &= 0xF7
		} else {
			b[0] |= 0x08
			{
				l := uint64(len(m.SubscriptionID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.SubscriptionID)
				o += l
			}
		}
	}
	{
		// Parameters

		if reflect.DeepEqual(m.Parameters, mSrc.Parameters) {
			b[0] &= 0xEF
		} else {
			b[0] |= 0x10
			o += marshal10(&m.Parameters, b[o:])
		}
	}
	{
		// Push

		if reflect.DeepEqual(m.Push, mSrc.Push) {
			b[0] &= 0xDF
		} else {
			b[0] |= 0x20
			o += marshal6(&m.Push, b[o:])
		}
	}

	return o
}

func applyPatch12(m *ManageCollectionSubscriptionRequest, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if b[0]&0x01 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.MessageID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// CollectionName

		if b[0]&0x02 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.CollectionName = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// Action

		if b[0]&0x04 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.Action = Action(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// SubscriptionID

		if b[0]&0x08 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.SubscriptionID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// Parameters

		if b[0]&0x10 != 0 {
			o += unmarshal10(&m.Parameters, b[o:])
		}
	}
	{
		// Push

		if b[0]&0x20 != 0 {
			o += unmarshal6(&m.Push, b[o:])
		}
	}

	return o
}

func size14(m *CollectionInformationResponse) uint64 {
	var n uint64 = 3
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// InResponseTo

		{
			l := uint64(len(m.InResponseTo))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Collections

		l := uint64(len(m.Collections))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.Collections {
			n += size13(&sv1)
		}
	}
	return n
}

func marshal14(m *CollectionInformationResponse, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.MessageID)
			o += l
		}
	}
	{
		// InResponseTo

		{
			l := uint64(len(m.InResponseTo))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.InResponseTo)
			o += l
		}
	}
	{
		// Collections

		helpers.UInt64Marshal(uint64(len(m.Collections)), b, &o)
		for _, sv1 := range m.Collections {
			o += marshal13(&sv1, b[o:])
		}
	}

	return o
}

func unmarshal14(m *CollectionInformationResponse, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.MessageID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// InResponseTo

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.InResponseTo = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Collections

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.Collections = make([]CollectionInformation, l)
			for i1 := range l {
				o += unmarshal13(&m.Collections[i1], b[o:])
			}
		}
	}

	return o
}

func makePatch14(m, mSrc *CollectionInformationResponse, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if reflect.DeepEqual(m.MessageID, mSrc.MessageID) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			{
				l := uint64(len(m.MessageID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.MessageID)
				o += l
			}
		}
	}
	{
		// InResponseTo

		if reflect.DeepEqual(m.InResponseTo, mSrc.InResponseTo) {
			b[0] &= 0xFD
		} else {
			b[0] |= 0x02
			{
				l := uint64(len(m.InResponseTo))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.InResponseTo)
				o += l
			}
		}
	}
	{
		// Collections

		if reflect.DeepEqual(m.Collections, mSrc.Collections) {
			b[0] &= 0xFB
		} else {
			b[0] |= 0x04
			helpers.UInt64Marshal(uint64(len(m.Collections)), b, &o)
			for _, sv1 := range m.Collections {
				o += marshal13(&sv1, b[o:])
			}
		}
	}

	return o
}

func applyPatch14(m *CollectionInformationResponse, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if b[0]&0x01 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.MessageID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// InResponseTo

		if b[0]&0x02 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.InResponseTo = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// Collections

		if b[0]&0x04 != 0 {
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Collections = make([]CollectionInformation, l)
				for i1 := range l {
					o += unmarshal13(&m.Collections[i1], b[o:])
				}
			}
		}
	}

	return o
}

func size13(m *CollectionInformation) uint64 {
	var n uint64 = 9
	{
		// CollectionName

		{
			l := uint64(len(m.CollectionName))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// CollectionType

		{
			l := uint64(len(m.CollectionType))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Description

		{
			l := uint64(len(m.Description))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Volume

		helpers.UInt64Size(m.Volume, &n)
	}
	{
		// ContentBindings

		l := uint64(len(m.ContentBindings))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.ContentBindings {
			n += size3(&sv1)
		}
	}
	{
		// PollingServices

		l := uint64(len(m.PollingServices))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.PollingServices {
			n += size11(&sv1)
		}
	}
	{
		// SubscriptionServices

		l := uint64(len(m.SubscriptionServices))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.SubscriptionServices {
			n += size11(&sv1)
		}
	}
	{
		// ReceivingInboxes

		l := uint64(len(m.ReceivingInboxes))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.ReceivingInboxes {
			n += size11(&sv1)
		}
	}
	return n
}

func marshal13(m *CollectionInformation, b []byte) uint64 {
	var o uint64 = 1
	{
		// CollectionName

		{
			l := uint64(len(m.CollectionName))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.CollectionName)
			o += l
		}
	}
	{
		// CollectionType

		{
			l := uint64(len(m.CollectionType))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.CollectionType)
			o += l
		}
	}
	{
		// Description

		{
			l := uint64(len(m.Description))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Description)
			o += l
		}
	}
	{
		// Available

		if m.Available {
			b[0] |= 0x01
		} else {
			b[0] &= 0xFE
		}
	}
	{
		// Volume

		helpers.UInt64Marshal(m.Volume, b, &o)
	}
	{
		// ContentBindings

		helpers.UInt64Marshal(uint64(len(m.ContentBindings)), b, &o)
		for _, sv1 := range m.ContentBindings {
			o += marshal3(&sv1, b[o:])
		}
	}
	{
		// PollingServices

		helpers.UInt64Marshal(uint64(len(m.PollingServices)), b, &o)
		for _, sv1 := range m.PollingServices {
			o += marshal11(&sv1, b[o:])
		}
	}
	{
		// SubscriptionServices

		helpers.UInt64Marshal(uint64(len(m.SubscriptionServices)), b, &o)
		for _, sv1 := range m.SubscriptionServices {
			o += marshal11(&sv1, b[o:])
		}
	}
	{
		// ReceivingInboxes

		helpers.UInt64Marshal(uint64(len(m.ReceivingInboxes)), b, &o)
		for _, sv1 := range m.ReceivingInboxes {
			o += marshal11(&sv1, b[o:])
		}
	}

	return o
}

func unmarshal13(m *CollectionInformation, b []byte) uint64 {
	var o uint64 = 1
	{
		// CollectionName

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.CollectionName = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// CollectionType

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.CollectionType = CollectionType(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Description

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Description = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Available

		m.Available = b[0]&0x01 != 0
	}
	{
		// Volume

		helpers.UInt64Unmarshal(&m.Volume, b, &o)
	}
	{
		// ContentBindings

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.ContentBindings = make([]ContentBinding, l)
			for i1 := range l {
				o += unmarshal3(&m.ContentBindings[i1], b[o:])
			}
		}
	}
	{
		// PollingServices

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.PollingServices = make([]ServiceEndpoint, l)
			for i1 := range l {
				o += unmarshal11(&m.PollingServices[i1], b[o:])
			}
		}
	}
	{
		// SubscriptionServices

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.SubscriptionServices = make([]ServiceEndpoint, l)
			for i1 := range l {
				o += unmarshal11(&m.SubscriptionServices[i1], b[o:])
			}
		}
	}
	{
		// ReceivingInboxes

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.ReceivingInboxes = make([]ServiceEndpoint, l)
			for i1 := range l {
				o += unmarshal11(&m.ReceivingInboxes[i1], b[o:])
			}
		}
	}

	return o
}

func size15(m *CollectionInformationRequest) uint64 {
	var n uint64 = 1
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	return n
}

func marshal15(m *CollectionInformationRequest, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.MessageID)
			o += l
		}
	}

	return o
}

func unmarshal15(m *CollectionInformationRequest, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.MessageID = string(b[o : o+l])
				o += l
			}
		}
	}

	return o
}

func makePatch15(m, mSrc *CollectionInformationRequest, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if reflect.DeepEqual(m.MessageID, mSrc.MessageID) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			{
				l := uint64(len(m.MessageID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.MessageID)
				o += l
			}
		}
	}

	return o
}

func applyPatch15(m *CollectionInformationRequest, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if b[0]&0x01 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.MessageID = string(b[o : o+l])
					o += l
				}
			}
		}
	}

	return o
}

func size17(m *StatusMessage) uint64 {
	var n uint64 = 5
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// InResponseTo

		{
			l := uint64(len(m.InResponseTo))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Status

		{
			l := uint64(len(m.Status))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Message

		{
			l := uint64(len(m.Message))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Details

		l := uint64(len(m.Details))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.Details {
			n += size16(&sv1)
		}
	}
	return n
}

func marshal17(m *StatusMessage, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.MessageID)
			o += l
		}
	}
	{
		// InResponseTo

		{
			l := uint64(len(m.InResponseTo))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.InResponseTo)
			o += l
		}
	}
	{
		// Status

		{
			l := uint64(len(m.Status))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Status)
			o += l
		}
	}
	{
		// Message

		{
			l := uint64(len(m.Message))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Message)
			o += l
		}
	}
	{
		// Details

		helpers.UInt64Marshal(uint64(len(m.Details)), b, &o)
		for _, sv1 := range m.Details {
			o += marshal16(&sv1, b[o:])
		}
	}

	return o
}

func unmarshal17(m *StatusMessage, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.MessageID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// InResponseTo

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.InResponseTo = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Status

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Status = StatusType(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Message

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Message = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Details

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.Details = make([]StatusDetail, l)
			for i1 := range l {
				o += unmarshal16(&m.Details[i1], b[o:])
			}
		}
	}

	return o
}

func makePatch17(m, mSrc *StatusMessage, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if reflect.DeepEqual(m.MessageID, mSrc.MessageID) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			{
				l := uint64(len(m.MessageID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.MessageID)
				o += l
			}
		}
	}
	{
		// InResponseTo

		if reflect.DeepEqual(m.InResponseTo, mSrc.InResponseTo) {
			b[0] &= 0xFD
		} else {
			b[0] |= 0x02
			{
				l := uint64(len(m.InResponseTo))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.InResponseTo)
				o += l
			}
		}
	}
	{
		// Status

		if reflect.DeepEqual(m.Status, mSrc.Status) {
			b[0] &= 0xFB
		} else {
			b[0] |= 0x04
			{
				l := uint64(len(m.Status))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.Status)
				o += l
			}
		}
	}
	{
		// Message

		if reflect.DeepEqual(m.Message, mSrc.Message) {
			b[0] &= 0xF7
		} else {
			b[0] |= 0x08
			{
				l := uint64(len(m.Message))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.Message)
				o += l
			}
		}
	}
	{
		// Details

		if reflect.DeepEqual(m.Details, mSrc.Details) {
			b[0] &= 0xEF
		} else {
			b[0] |= 0x10
			helpers.UInt64Marshal(uint64(len(m.Details)), b, &o)
			for _, sv1 := range m.Details {
				o += marshal16(&sv1, b[o:])
			}
		}
	}

	return o
}

func applyPatch17(m *StatusMessage, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if b[0]&0x01 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.MessageID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// InResponseTo

		if b[0]&0x02 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.InResponseTo = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// Status

		if b[0]&0x04 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.Status = StatusType(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// Message

		if b[0]&0x08 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.Message = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// Details

		if b[0]&0x10 != 0 {
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Details = make([]StatusDetail, l)
				for i1 := range l {
					o += unmarshal16(&m.Details[i1], b[o:])
				}
			}
		}
	}

	return o
}

func size16(m *StatusDetail) uint64 {
	var n uint64 = 2
	{
		// Name

		{
			l := uint64(len(m.Name))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Value

		{
			l := uint64(len(m.Value))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	return n
}

func marshal16(m *StatusDetail, b []byte) uint64 {
	var o uint64
	{
		// Name

		{
			l := uint64(len(m.Name))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Name)
			o += l
		}
	}
	{
		// Value

		{
			l := uint64(len(m.Value))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Value)
			o += l
		}
	}

	return o
}

func unmarshal16(m *StatusDetail, b []byte) uint64 {
	var o uint64
	{
		// Name

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Name = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Value

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Value = string(b[o : o+l])
				o += l
			}
		}
	}

	return o
}

func size19(m *DiscoveryResponse) uint64 {
	var n uint64 = 3
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// InResponseTo

		{
			l := uint64(len(m.InResponseTo))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Services

		l := uint64(len(m.Services))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.Services {
			n += size18(&sv1)
		}
	}
	return n
}

func marshal19(m *DiscoveryResponse, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.MessageID)
			o += l
		}
	}
	{
		// InResponseTo

		{
			l := uint64(len(m.InResponseTo))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.InResponseTo)
			o += l
		}
	}
	{
		// Services

		helpers.UInt64Marshal(uint64(len(m.Services)), b, &o)
		for _, sv1 := range m.Services {
			o += marshal18(&sv1, b[o:])
		}
	}

	return o
}

func unmarshal19(m *DiscoveryResponse, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.MessageID = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// InResponseTo

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.InResponseTo = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Services

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.Services = make([]ServiceInstance, l)
			for i1 := range l {
				o += unmarshal18(&m.Services[i1], b[o:])
			}
		}
	}

	return o
}

func makePatch19(m, mSrc *DiscoveryResponse, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if reflect.DeepEqual(m.MessageID, mSrc.MessageID) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			{
				l := uint64(len(m.MessageID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.MessageID)
				o += l
			}
		}
	}
	{
		// InResponseTo

		if reflect.DeepEqual(m.InResponseTo, mSrc.InResponseTo) {
			b[0] &= 0xFD
		} else {
			b[0] |= 0x02
			{
				l := uint64(len(m.InResponseTo))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.InResponseTo)
				o += l
			}
		}
	}
	{
		// Services

		if reflect.DeepEqual(m.Services, mSrc.Services) {
			b[0] &= 0xFB
		} else {
			b[0] |= 0x04
			helpers.UInt64Marshal(uint64(len(m.Services)), b, &o)
			for _, sv1 := range m.Services {
				o += marshal18(&sv1, b[o:])
			}
		}
	}

	return o
}

func applyPatch19(m *DiscoveryResponse, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if b[0]&0x01 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.MessageID = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// InResponseTo

		if b[0]&0x02 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.InResponseTo = string(b[o : o+l])
					o += l
				}
			}
		}
	}
	{
		// Services

		if b[0]&0x04 != 0 {
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Services = make([]ServiceInstance, l)
				for i1 := range l {
					o += unmarshal18(&m.Services[i1], b[o:])
				}
			}
		}
	}

	return o
}

func size18(m *ServiceInstance) uint64 {
	var n uint64 = 8
	{
		// ServiceType

		{
			l := uint64(len(m.ServiceType))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// ServiceVersion

		{
			l := uint64(len(m.ServiceVersion))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// ProtocolBinding

		{
			l := uint64(len(m.ProtocolBinding))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// Address

		{
			l := uint64(len(m.Address))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	{
		// MessageBindings

		l := uint64(len(m.MessageBindings))
		helpers.UInt64Size(l, &n)
		n += l
		for _, sv1 := range m.MessageBindings {
			{
				l := uint64(len(sv1))
				helpers.UInt64Size(l, &n)
				n += l
			}
		}
	}
	{
		// ContentBindings

		l := uint64(len(m.ContentBindings))
		helpers.UInt64Size(l, &n)
		for _, sv1 := range m.ContentBindings {
			n += size3(&sv1)
		}
	}
	{
		// Message

		{
			l := uint64(len(m.Message))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	return n
}

func marshal18(m *ServiceInstance, b []byte) uint64 {
	var o uint64 = 1
	{
		// ServiceType

		{
			l := uint64(len(m.ServiceType))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.ServiceType)
			o += l
		}
	}
	{
		// ServiceVersion

		{
			l := uint64(len(m.ServiceVersion))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.ServiceVersion)
			o += l
		}
	}
	{
		// ProtocolBinding

		{
			l := uint64(len(m.ProtocolBinding))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.ProtocolBinding)
			o += l
		}
	}
	{
		// Address

		{
			l := uint64(len(m.Address))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Address)
			o += l
		}
	}
	{
		// MessageBindings

		helpers.UInt64Marshal(uint64(len(m.MessageBindings)), b, &o)
		for _, sv1 := range m.MessageBindings {
			{
				l := uint64(len(sv1))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], sv1)
				o += l
			}
		}
	}
	{
		// ContentBindings

		helpers.UInt64Marshal(uint64(len(m.ContentBindings)), b, &o)
		for _, sv1 := range m.ContentBindings {
			o += marshal3(&sv1, b[o:])
		}
	}
	{
		// Available

		if m.Available {
			b[0] |= 0x01
		} else {
			b[0] &= 0xFE
		}
	}
	{
		// Message

		{
			l := uint64(len(m.Message))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.Message)
			o += l
		}
	}

	return o
}

func unmarshal18(m *ServiceInstance, b []byte) uint64 {
	var o uint64 = 1
	{
		// ServiceType

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.ServiceType = ServiceType(b[o : o+l])
				o += l
			}
		}
	}
	{
		// ServiceVersion

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.ServiceVersion = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// ProtocolBinding

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.ProtocolBinding = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// Address

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Address = string(b[o : o+l])
				o += l
			}
		}
	}
	{
		// MessageBindings

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.MessageBindings = make([]string, l)
			for i1 := range l {
				{
					var l uint64
					helpers.UInt64Unmarshal(&l, b, &o)
					if l > 0 {
						m.MessageBindings[i1] = string(b[o : o+l])
						o += l
					}
				}
			}
		}
	}
	{
		// ContentBindings

		var l uint64
		helpers.UInt64Unmarshal(&l, b, &o)
		if l > 0 {
			m.ContentBindings = make([]ContentBinding, l)
			for i1 := range l {
				o += unmarshal3(&m.ContentBindings[i1], b[o:])
			}
		}
	}
	{
		// Available

		m.Available = b[0]&0x01 != 0
	}
	{
		// Message

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.Message = string(b[o : o+l])
				o += l
			}
		}
	}

	return o
}

func size20(m *DiscoveryRequest) uint64 {
	var n uint64 = 1
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Size(l, &n)
			n += l
		}
	}
	return n
}

func marshal20(m *DiscoveryRequest, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			l := uint64(len(m.MessageID))
			helpers.UInt64Marshal(l, b, &o)
			copy(b[o:o+l], m.MessageID)
			o += l
		}
	}

	return o
}

func unmarshal20(m *DiscoveryRequest, b []byte) uint64 {
	var o uint64
	{
		// MessageID

		{
			var l uint64
			helpers.UInt64Unmarshal(&l, b, &o)
			if l > 0 {
				m.MessageID = string(b[o : o+l])
				o += l
			}
		}
	}

	return o
}

func makePatch20(m, mSrc *DiscoveryRequest, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if reflect.DeepEqual(m.MessageID, mSrc.MessageID) {
			b[0] &= 0xFE
		} else {
			b[0] |= 0x01
			{
				l := uint64(len(m.MessageID))
				helpers.UInt64Marshal(l, b, &o)
				copy(b[o:o+l], m.MessageID)
				o += l
			}
		}
	}

	return o
}

func applyPatch20(m *DiscoveryRequest, b []byte) uint64 {
	var o uint64 = 1
	{
		// MessageID

		if b[0]&0x01 != 0 {
			{
				var l uint64
				helpers.UInt64Unmarshal(&l, b, &o)
				if l > 0 {
					m.MessageID = string(b[o : o+l])
					o += l
				}
			}
		}
	}

	return o
}
