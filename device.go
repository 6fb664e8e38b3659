package analytics

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeviceAppAttributes is the snapshot of device and host-application
// metadata stamped onto every event. The Manager holds one snapshot and
// hands it to builders; a nil snapshot fails event construction.
type DeviceAppAttributes struct {
	AppVersion       string `json:"appVersion" yaml:"app_version"`
	AppName          string `json:"appName" yaml:"app_name"`
	OSVersion        string `json:"osVersion" yaml:"os_version"`
	OSName           string `json:"osName" yaml:"os_name"`
	NativeAppType    string `json:"nativeAppType" yaml:"native_app_type"`
	MobileSDKVersion string `json:"mobileSdkVersion" yaml:"mobile_sdk_version"`
	DeviceModel      string `json:"deviceModel" yaml:"device_model"`
	DeviceID         string `json:"deviceId" yaml:"device_id"`
	ClientID         string `json:"clientId" yaml:"client_id"`
}

// LoadDeviceAppAttributes reads a device/app attributes snapshot from a
// YAML file. Unknown keys are rejected so typos in packaged config
// surface early.
//
// Example file:
//
//	app_name: AcmeApp
//	app_version: 4.2.0
//	os_name: android
//	os_version: "14"
//	device_model: Pixel 8
//	device_id: 3f1c9a
func LoadDeviceAppAttributes(path string) (*DeviceAppAttributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("analytics: reading device attributes file: %w", err)
	}
	return ParseDeviceAppAttributes(data)
}

// ParseDeviceAppAttributes decodes a YAML document into a
// DeviceAppAttributes snapshot.
func ParseDeviceAppAttributes(data []byte) (*DeviceAppAttributes, error) {
	var attrs DeviceAppAttributes
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&attrs); err != nil {
		return nil, fmt.Errorf("analytics: parsing device attributes: %w", err)
	}
	return &attrs, nil
}
