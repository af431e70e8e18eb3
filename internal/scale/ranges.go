package scale

// Device-native ranges accepted by the light API.
// The API rejects bri=0; turning the light off goes through "on".
var (
	DeviceBrightness = NewInterval(1, 254)
	DeviceHue        = NewInterval(0, 65535)
	DeviceSaturation = NewInterval(0, 254)
	// DeviceColorTemp is used when a light does not report its own range
	DeviceColorTemp = NewInterval(153, 500)
)

// Slider ranges using common conventions
var (
	SliderBrightness = NewInterval(1, 100)
	SliderHue        = NewInterval(0, 360)
	SliderSaturation = NewInterval(0, 100)
)
