// Package message implements SML messages and files on top of the sml codec.
//
// A Message wraps one Body, the request or response of an SML service such as
// GetListResponse, with a transaction id, a group number, an abort-on-error
// policy and a checksum. A File is a sequence of messages as sent by a meter in one
// transmission.
//
// Decoding a meter transmission whose transport framing has already been removed:
//
//	file, err := message.DecodeFile(data, message.WithStrict(false))
//	if err != nil {
//		return err
//	}
//	defer file.Free()
//
//	for _, body := range file.Bodies(message.GetListResponseTag) {
//		for objName, value := range body.(*message.GetListResponse).Values() {
//			fmt.Println(objName.Hex(), value)
//		}
//	}
//
// The checksum of a decoded message is kept as read and is not verified. Encoders
// write it verbatim unless WithComputedChecksum is given.
package message
