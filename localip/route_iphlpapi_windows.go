// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

//go:build windows

package localip

import (
	"net/netip"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"github.com/DataDog/datadog-localip/common"
)

var (
	modiphlpapi = windows.NewLazySystemDLL("iphlpapi.dll")

	procGetBestInterface = modiphlpapi.NewProc("GetBestInterface")
	procGetAdapterIndex  = modiphlpapi.NewProc("GetAdapterIndex")
)

// adapterNamePrefix turns an adapter GUID into the device name GetAdapterIndex expects.
const adapterNamePrefix = `\DEVICE\TCPIP_`

func newIPHelperResolver() RouteResolver {
	return &ipHelperResolver{
		bestInterface: getBestInterface,
		adapters:      getAdapters,
		indexByName:   getAdapterIndex,
	}
}

func getBestInterface(dest netip.Addr) (uint32, error) {
	if err := procGetBestInterface.Find(); err != nil {
		return 0, &SystemCallError{Call: "GetBestInterface", Err: err}
	}

	var index uint32
	ret, _, _ := procGetBestInterface.Call(uintptr(inAddr(dest)), uintptr(unsafe.Pointer(&index)))
	if ret != 0 {
		return 0, &SystemCallError{Call: "GetBestInterface", Err: windows.Errno(ret)}
	}
	return index, nil
}

func getAdapterIndex(name string) (uint32, error) {
	if err := procGetAdapterIndex.Find(); err != nil {
		return 0, &SystemCallError{Call: "GetAdapterIndex", Err: err}
	}

	devName, err := windows.UTF16PtrFromString(adapterNamePrefix + name)
	if err != nil {
		return 0, err
	}

	var index uint32
	ret, _, _ := procGetAdapterIndex.Call(uintptr(unsafe.Pointer(devName)), uintptr(unsafe.Pointer(&index)))
	if ret != 0 {
		return 0, &SystemCallError{Call: "GetAdapterIndex", Err: windows.Errno(ret)}
	}
	return index, nil
}

// getAdapters asks for the required buffer size first, then fetches the
// adapter list into a buffer of that size, as GetAdaptersAddresses requires.
// The buffer lives only for this call.
func getAdapters() ([]Adapter, error) {
	var size uint32
	err := windows.GetAdaptersAddresses(windows.AF_UNSPEC, 0, 0, nil, &size)
	switch {
	case errors.Is(err, windows.ERROR_BUFFER_OVERFLOW):
	case errors.Is(err, windows.ERROR_NO_DATA), err == nil:
		return nil, nil
	default:
		return nil, &SystemCallError{Call: "GetAdaptersAddresses", Err: err}
	}
	if size == 0 {
		return nil, nil
	}

	buf := make([]byte, size)
	first := (*windows.IpAdapterAddresses)(unsafe.Pointer(&buf[0]))
	if err := windows.GetAdaptersAddresses(windows.AF_UNSPEC, 0, 0, first, &size); err != nil {
		return nil, &SystemCallError{Call: "GetAdaptersAddresses", Err: err}
	}

	return decodeAdapters(first), nil
}

// decodeAdapters copies the linked adapter list into plain records. Only the
// unicast addresses are kept; each is unpacked through its sockaddr family.
func decodeAdapters(first *windows.IpAdapterAddresses) []Adapter {
	var adapters []Adapter
	for aa := first; aa != nil; aa = aa.Next {
		adapter := Adapter{
			Index: aa.IfIndex,
			Name:  windows.BytePtrToString(aa.AdapterName),
		}
		for ua := aa.FirstUnicastAddress; ua != nil; ua = ua.Next {
			addr, ok := common.UnmappedAddrFromSlice(ua.Address.IP())
			if !ok {
				continue
			}
			adapter.Addresses = append(adapter.Addresses, addr)
		}
		adapters = append(adapters, adapter)
	}
	return adapters
}
