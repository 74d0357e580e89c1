package reminder

import "errors"

var ErrInvalidChannel = errors.New("invalid reminder channel")

type Channel struct {
	v string
}

var (
	ChannelUnknown = Channel{}
	ChannelEmail   = Channel{v: "email"}
	ChannelInApp   = Channel{v: "in_app"}
	ChannelBoth    = Channel{v: "both"}
)

func ParseChannel(value string) (Channel, error) {
	switch value {
	case "email":
		return ChannelEmail, nil
	case "in_app":
		return ChannelInApp, nil
	case "both":
		return ChannelBoth, nil
	default:
		return ChannelUnknown, ErrInvalidChannel
	}
}

func (c Channel) String() string {
	return c.v
}

func (c Channel) IncludesInApp() bool {
	return c == ChannelInApp || c == ChannelBoth
}

func (c Channel) IncludesEmail() bool {
	return c == ChannelEmail || c == ChannelBoth
}

// OrDefault maps the zero value to ChannelBoth.
func (c Channel) OrDefault() Channel {
	if c == ChannelUnknown {
		return ChannelBoth
	}
	return c
}
