// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: chrono.proto

package chronopb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// Direction selects which way a shift moves.
type Direction int32

const (
	Direction_FORWARD  Direction = 0
	Direction_BACKWARD Direction = 1
)

// Enum value maps for Direction.
var (
	Direction_name = map[int32]string{
		0: "FORWARD",
		1: "BACKWARD",
	}
	Direction_value = map[string]int32{
		"FORWARD":  0,
		"BACKWARD": 1,
	}
)

func (x Direction) Enum() *Direction {
	p := new(Direction)
	*p = x
	return p
}

func (x Direction) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Direction) Descriptor() protoreflect.EnumDescriptor {
	return file_chrono_proto_enumTypes[0].Descriptor()
}

func (Direction) Type() protoreflect.EnumType {
	return &file_chrono_proto_enumTypes[0]
}

func (x Direction) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Direction.Descriptor instead.
func (Direction) EnumDescriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{0}
}

type NowResponse_Status int32

const (
	NowResponse_SUCCESS NowResponse_Status = 0
	NowResponse_ERROR   NowResponse_Status = 1
)

// Enum value maps for NowResponse_Status.
var (
	NowResponse_Status_name = map[int32]string{
		0: "SUCCESS",
		1: "ERROR",
	}
	NowResponse_Status_value = map[string]int32{
		"SUCCESS": 0,
		"ERROR":   1,
	}
)

func (x NowResponse_Status) Enum() *NowResponse_Status {
	p := new(NowResponse_Status)
	*p = x
	return p
}

func (x NowResponse_Status) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (NowResponse_Status) Descriptor() protoreflect.EnumDescriptor {
	return file_chrono_proto_enumTypes[1].Descriptor()
}

func (NowResponse_Status) Type() protoreflect.EnumType {
	return &file_chrono_proto_enumTypes[1]
}

func (x NowResponse_Status) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use NowResponse_Status.Descriptor instead.
func (NowResponse_Status) EnumDescriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{4, 0}
}

type ShiftDaysResponse_Status int32

const (
	ShiftDaysResponse_SUCCESS ShiftDaysResponse_Status = 0
	ShiftDaysResponse_ERROR   ShiftDaysResponse_Status = 1
)

// Enum value maps for ShiftDaysResponse_Status.
var (
	ShiftDaysResponse_Status_name = map[int32]string{
		0: "SUCCESS",
		1: "ERROR",
	}
	ShiftDaysResponse_Status_value = map[string]int32{
		"SUCCESS": 0,
		"ERROR":   1,
	}
)

func (x ShiftDaysResponse_Status) Enum() *ShiftDaysResponse_Status {
	p := new(ShiftDaysResponse_Status)
	*p = x
	return p
}

func (x ShiftDaysResponse_Status) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ShiftDaysResponse_Status) Descriptor() protoreflect.EnumDescriptor {
	return file_chrono_proto_enumTypes[2].Descriptor()
}

func (ShiftDaysResponse_Status) Type() protoreflect.EnumType {
	return &file_chrono_proto_enumTypes[2]
}

func (x ShiftDaysResponse_Status) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ShiftDaysResponse_Status.Descriptor instead.
func (ShiftDaysResponse_Status) EnumDescriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{6, 0}
}

type ShiftSecondsResponse_Status int32

const (
	ShiftSecondsResponse_SUCCESS ShiftSecondsResponse_Status = 0
	ShiftSecondsResponse_ERROR   ShiftSecondsResponse_Status = 1
)

// Enum value maps for ShiftSecondsResponse_Status.
var (
	ShiftSecondsResponse_Status_name = map[int32]string{
		0: "SUCCESS",
		1: "ERROR",
	}
	ShiftSecondsResponse_Status_value = map[string]int32{
		"SUCCESS": 0,
		"ERROR":   1,
	}
)

func (x ShiftSecondsResponse_Status) Enum() *ShiftSecondsResponse_Status {
	p := new(ShiftSecondsResponse_Status)
	*p = x
	return p
}

func (x ShiftSecondsResponse_Status) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ShiftSecondsResponse_Status) Descriptor() protoreflect.EnumDescriptor {
	return file_chrono_proto_enumTypes[3].Descriptor()
}

func (ShiftSecondsResponse_Status) Type() protoreflect.EnumType {
	return &file_chrono_proto_enumTypes[3]
}

func (x ShiftSecondsResponse_Status) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ShiftSecondsResponse_Status.Descriptor instead.
func (ShiftSecondsResponse_Status) EnumDescriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{8, 0}
}

type CompareResponse_Status int32

const (
	CompareResponse_SUCCESS CompareResponse_Status = 0
	CompareResponse_ERROR   CompareResponse_Status = 1
)

// Enum value maps for CompareResponse_Status.
var (
	CompareResponse_Status_name = map[int32]string{
		0: "SUCCESS",
		1: "ERROR",
	}
	CompareResponse_Status_value = map[string]int32{
		"SUCCESS": 0,
		"ERROR":   1,
	}
)

func (x CompareResponse_Status) Enum() *CompareResponse_Status {
	p := new(CompareResponse_Status)
	*p = x
	return p
}

func (x CompareResponse_Status) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (CompareResponse_Status) Descriptor() protoreflect.EnumDescriptor {
	return file_chrono_proto_enumTypes[4].Descriptor()
}

func (CompareResponse_Status) Type() protoreflect.EnumType {
	return &file_chrono_proto_enumTypes[4]
}

func (x CompareResponse_Status) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use CompareResponse_Status.Descriptor instead.
func (CompareResponse_Status) EnumDescriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{10, 0}
}

type CompareResponse_Ordering int32

const (
	CompareResponse_EQUAL  CompareResponse_Ordering = 0
	CompareResponse_BEFORE CompareResponse_Ordering = 1
	CompareResponse_AFTER  CompareResponse_Ordering = 2
)

// Enum value maps for CompareResponse_Ordering.
var (
	CompareResponse_Ordering_name = map[int32]string{
		0: "EQUAL",
		1: "BEFORE",
		2: "AFTER",
	}
	CompareResponse_Ordering_value = map[string]int32{
		"EQUAL":  0,
		"BEFORE": 1,
		"AFTER":  2,
	}
)

func (x CompareResponse_Ordering) Enum() *CompareResponse_Ordering {
	p := new(CompareResponse_Ordering)
	*p = x
	return p
}

func (x CompareResponse_Ordering) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (CompareResponse_Ordering) Descriptor() protoreflect.EnumDescriptor {
	return file_chrono_proto_enumTypes[5].Descriptor()
}

func (CompareResponse_Ordering) Type() protoreflect.EnumType {
	return &file_chrono_proto_enumTypes[5]
}

func (x CompareResponse_Ordering) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use CompareResponse_Ordering.Descriptor instead.
func (CompareResponse_Ordering) EnumDescriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{10, 1}
}

type HealthResponse_Status int32

const (
	HealthResponse_SERVING     HealthResponse_Status = 0
	HealthResponse_NOT_SERVING HealthResponse_Status = 1
)

// Enum value maps for HealthResponse_Status.
var (
	HealthResponse_Status_name = map[int32]string{
		0: "SERVING",
		1: "NOT_SERVING",
	}
	HealthResponse_Status_value = map[string]int32{
		"SERVING":     0,
		"NOT_SERVING": 1,
	}
)

func (x HealthResponse_Status) Enum() *HealthResponse_Status {
	p := new(HealthResponse_Status)
	*p = x
	return p
}

func (x HealthResponse_Status) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (HealthResponse_Status) Descriptor() protoreflect.EnumDescriptor {
	return file_chrono_proto_enumTypes[6].Descriptor()
}

func (HealthResponse_Status) Type() protoreflect.EnumType {
	return &file_chrono_proto_enumTypes[6]
}

func (x HealthResponse_Status) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use HealthResponse_Status.Descriptor instead.
func (HealthResponse_Status) EnumDescriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{12, 0}
}

// Date carries calendar fields. Month, weekday and year_day are
// zero-based (January = 0, Sunday = 0, 1 January = 0); day counts
// from 1.
type Date struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Day     int64 `protobuf:"varint,1,opt,name=day,proto3" json:"day,omitempty"`
	Month   int64 `protobuf:"varint,2,opt,name=month,proto3" json:"month,omitempty"`
	Year    int64 `protobuf:"varint,3,opt,name=year,proto3" json:"year,omitempty"`
	Weekday int64 `protobuf:"varint,4,opt,name=weekday,proto3" json:"weekday,omitempty"`
	YearDay int64 `protobuf:"varint,5,opt,name=year_day,json=yearDay,proto3" json:"year_day,omitempty"`
}

func (x *Date) Reset() {
	*x = Date{}
	if protoimpl.UnsafeEnabled {
		mi := &file_chrono_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Date) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Date) ProtoMessage() {}

func (x *Date) ProtoReflect() protoreflect.Message {
	mi := &file_chrono_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Date.ProtoReflect.Descriptor instead.
func (*Date) Descriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{0}
}

func (x *Date) GetDay() int64 {
	if x != nil {
		return x.Day
	}
	return 0
}

func (x *Date) GetMonth() int64 {
	if x != nil {
		return x.Month
	}
	return 0
}

func (x *Date) GetYear() int64 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *Date) GetWeekday() int64 {
	if x != nil {
		return x.Weekday
	}
	return 0
}

func (x *Date) GetYearDay() int64 {
	if x != nil {
		return x.YearDay
	}
	return 0
}

// TimeOfDay carries a 24-hour clock reading.
type TimeOfDay struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Hours   int64 `protobuf:"varint,1,opt,name=hours,proto3" json:"hours,omitempty"`
	Minutes int64 `protobuf:"varint,2,opt,name=minutes,proto3" json:"minutes,omitempty"`
	Seconds int64 `protobuf:"varint,3,opt,name=seconds,proto3" json:"seconds,omitempty"`
}

func (x *TimeOfDay) Reset() {
	*x = TimeOfDay{}
	if protoimpl.UnsafeEnabled {
		mi := &file_chrono_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *TimeOfDay) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TimeOfDay) ProtoMessage() {}

func (x *TimeOfDay) ProtoReflect() protoreflect.Message {
	mi := &file_chrono_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TimeOfDay.ProtoReflect.Descriptor instead.
func (*TimeOfDay) Descriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{1}
}

func (x *TimeOfDay) GetHours() int64 {
	if x != nil {
		return x.Hours
	}
	return 0
}

func (x *TimeOfDay) GetMinutes() int64 {
	if x != nil {
		return x.Minutes
	}
	return 0
}

func (x *TimeOfDay) GetSeconds() int64 {
	if x != nil {
		return x.Seconds
	}
	return 0
}

type DateTime struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Date *Date      `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	Time *TimeOfDay `protobuf:"bytes,2,opt,name=time,proto3" json:"time,omitempty"`
}

func (x *DateTime) Reset() {
	*x = DateTime{}
	if protoimpl.UnsafeEnabled {
		mi := &file_chrono_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DateTime) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DateTime) ProtoMessage() {}

func (x *DateTime) ProtoReflect() protoreflect.Message {
	mi := &file_chrono_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DateTime.ProtoReflect.Descriptor instead.
func (*DateTime) Descriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{2}
}

func (x *DateTime) GetDate() *Date {
	if x != nil {
		return x.Date
	}
	return nil
}

func (x *DateTime) GetTime() *TimeOfDay {
	if x != nil {
		return x.Time
	}
	return nil
}

type NowRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ClientId  string `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	RequestId string `protobuf:"bytes,2,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
}

func (x *NowRequest) Reset() {
	*x = NowRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_chrono_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *NowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NowRequest) ProtoMessage() {}

func (x *NowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chrono_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NowRequest.ProtoReflect.Descriptor instead.
func (*NowRequest) Descriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{3}
}

func (x *NowRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *NowRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type NowResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Status       NowResponse_Status `protobuf:"varint,1,opt,name=status,proto3,enum=chrono.NowResponse_Status" json:"status,omitempty"`
	ErrorMessage string             `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Now          *DateTime          `protobuf:"bytes,3,opt,name=now,proto3" json:"now,omitempty"`
	Display      string             `protobuf:"bytes,4,opt,name=display,proto3" json:"display,omitempty"`
}

func (x *NowResponse) Reset() {
	*x = NowResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_chrono_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *NowResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NowResponse) ProtoMessage() {}

func (x *NowResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chrono_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NowResponse.ProtoReflect.Descriptor instead.
func (*NowResponse) Descriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{4}
}

func (x *NowResponse) GetStatus() NowResponse_Status {
	if x != nil {
		return x.Status
	}
	return NowResponse_SUCCESS
}

func (x *NowResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *NowResponse) GetNow() *DateTime {
	if x != nil {
		return x.Now
	}
	return nil
}

func (x *NowResponse) GetDisplay() string {
	if x != nil {
		return x.Display
	}
	return ""
}

type ShiftDaysRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Base      *DateTime `protobuf:"bytes,1,opt,name=base,proto3" json:"base,omitempty"`
	Days      uint64    `protobuf:"varint,2,opt,name=days,proto3" json:"days,omitempty"`
	Direction Direction `protobuf:"varint,3,opt,name=direction,proto3,enum=chrono.Direction" json:"direction,omitempty"`
	ClientId  string    `protobuf:"bytes,4,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	RequestId string    `protobuf:"bytes,5,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
}

func (x *ShiftDaysRequest) Reset() {
	*x = ShiftDaysRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_chrono_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ShiftDaysRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShiftDaysRequest) ProtoMessage() {}

func (x *ShiftDaysRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chrono_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShiftDaysRequest.ProtoReflect.Descriptor instead.
func (*ShiftDaysRequest) Descriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{5}
}

func (x *ShiftDaysRequest) GetBase() *DateTime {
	if x != nil {
		return x.Base
	}
	return nil
}

func (x *ShiftDaysRequest) GetDays() uint64 {
	if x != nil {
		return x.Days
	}
	return 0
}

func (x *ShiftDaysRequest) GetDirection() Direction {
	if x != nil {
		return x.Direction
	}
	return Direction_FORWARD
}

func (x *ShiftDaysRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *ShiftDaysRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type ShiftDaysResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Status       ShiftDaysResponse_Status `protobuf:"varint,1,opt,name=status,proto3,enum=chrono.ShiftDaysResponse_Status" json:"status,omitempty"`
	ErrorMessage string                   `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Result       *DateTime                `protobuf:"bytes,3,opt,name=result,proto3" json:"result,omitempty"`
	Display      string                   `protobuf:"bytes,4,opt,name=display,proto3" json:"display,omitempty"`
}

func (x *ShiftDaysResponse) Reset() {
	*x = ShiftDaysResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_chrono_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ShiftDaysResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShiftDaysResponse) ProtoMessage() {}

func (x *ShiftDaysResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chrono_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShiftDaysResponse.ProtoReflect.Descriptor instead.
func (*ShiftDaysResponse) Descriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{6}
}

func (x *ShiftDaysResponse) GetStatus() ShiftDaysResponse_Status {
	if x != nil {
		return x.Status
	}
	return ShiftDaysResponse_SUCCESS
}

func (x *ShiftDaysResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ShiftDaysResponse) GetResult() *DateTime {
	if x != nil {
		return x.Result
	}
	return nil
}

func (x *ShiftDaysResponse) GetDisplay() string {
	if x != nil {
		return x.Display
	}
	return ""
}

type ShiftSecondsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Base      *DateTime `protobuf:"bytes,1,opt,name=base,proto3" json:"base,omitempty"`
	Seconds   uint64    `protobuf:"varint,2,opt,name=seconds,proto3" json:"seconds,omitempty"`
	Direction Direction `protobuf:"varint,3,opt,name=direction,proto3,enum=chrono.Direction" json:"direction,omitempty"`
	ClientId  string    `protobuf:"bytes,4,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	RequestId string    `protobuf:"bytes,5,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
}

func (x *ShiftSecondsRequest) Reset() {
	*x = ShiftSecondsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_chrono_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ShiftSecondsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShiftSecondsRequest) ProtoMessage() {}

func (x *ShiftSecondsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chrono_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShiftSecondsRequest.ProtoReflect.Descriptor instead.
func (*ShiftSecondsRequest) Descriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{7}
}

func (x *ShiftSecondsRequest) GetBase() *DateTime {
	if x != nil {
		return x.Base
	}
	return nil
}

func (x *ShiftSecondsRequest) GetSeconds() uint64 {
	if x != nil {
		return x.Seconds
	}
	return 0
}

func (x *ShiftSecondsRequest) GetDirection() Direction {
	if x != nil {
		return x.Direction
	}
	return Direction_FORWARD
}

func (x *ShiftSecondsRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *ShiftSecondsRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type ShiftSecondsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Status       ShiftSecondsResponse_Status `protobuf:"varint,1,opt,name=status,proto3,enum=chrono.ShiftSecondsResponse_Status" json:"status,omitempty"`
	ErrorMessage string                      `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Result       *DateTime                   `protobuf:"bytes,3,opt,name=result,proto3" json:"result,omitempty"`
	Display      string                      `protobuf:"bytes,4,opt,name=display,proto3" json:"display,omitempty"`
}

func (x *ShiftSecondsResponse) Reset() {
	*x = ShiftSecondsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_chrono_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ShiftSecondsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShiftSecondsResponse) ProtoMessage() {}

func (x *ShiftSecondsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chrono_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShiftSecondsResponse.ProtoReflect.Descriptor instead.
func (*ShiftSecondsResponse) Descriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{8}
}

func (x *ShiftSecondsResponse) GetStatus() ShiftSecondsResponse_Status {
	if x != nil {
		return x.Status
	}
	return ShiftSecondsResponse_SUCCESS
}

func (x *ShiftSecondsResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ShiftSecondsResponse) GetResult() *DateTime {
	if x != nil {
		return x.Result
	}
	return nil
}

func (x *ShiftSecondsResponse) GetDisplay() string {
	if x != nil {
		return x.Display
	}
	return ""
}

type CompareRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	A         *DateTime `protobuf:"bytes,1,opt,name=a,proto3" json:"a,omitempty"`
	B         *DateTime `protobuf:"bytes,2,opt,name=b,proto3" json:"b,omitempty"`
	ClientId  string    `protobuf:"bytes,3,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	RequestId string    `protobuf:"bytes,4,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
}

func (x *CompareRequest) Reset() {
	*x = CompareRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_chrono_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CompareRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompareRequest) ProtoMessage() {}

func (x *CompareRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chrono_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompareRequest.ProtoReflect.Descriptor instead.
func (*CompareRequest) Descriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{9}
}

func (x *CompareRequest) GetA() *DateTime {
	if x != nil {
		return x.A
	}
	return nil
}

func (x *CompareRequest) GetB() *DateTime {
	if x != nil {
		return x.B
	}
	return nil
}

func (x *CompareRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *CompareRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type CompareResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Status       CompareResponse_Status   `protobuf:"varint,1,opt,name=status,proto3,enum=chrono.CompareResponse_Status" json:"status,omitempty"`
	ErrorMessage string                   `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	Ordering     CompareResponse_Ordering `protobuf:"varint,3,opt,name=ordering,proto3,enum=chrono.CompareResponse_Ordering" json:"ordering,omitempty"`
}

func (x *CompareResponse) Reset() {
	*x = CompareResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_chrono_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CompareResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompareResponse) ProtoMessage() {}

func (x *CompareResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chrono_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompareResponse.ProtoReflect.Descriptor instead.
func (*CompareResponse) Descriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{10}
}

func (x *CompareResponse) GetStatus() CompareResponse_Status {
	if x != nil {
		return x.Status
	}
	return CompareResponse_SUCCESS
}

func (x *CompareResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *CompareResponse) GetOrdering() CompareResponse_Ordering {
	if x != nil {
		return x.Ordering
	}
	return CompareResponse_EQUAL
}

type HealthRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ClientId string `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
}

func (x *HealthRequest) Reset() {
	*x = HealthRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_chrono_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *HealthRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthRequest) ProtoMessage() {}

func (x *HealthRequest) ProtoReflect() protoreflect.Message {
	mi := &file_chrono_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthRequest.ProtoReflect.Descriptor instead.
func (*HealthRequest) Descriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{11}
}

func (x *HealthRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

type HealthResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Status    HealthResponse_Status `protobuf:"varint,1,opt,name=status,proto3,enum=chrono.HealthResponse_Status" json:"status,omitempty"`
	ServiceId string                `protobuf:"bytes,2,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
}

func (x *HealthResponse) Reset() {
	*x = HealthResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_chrono_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *HealthResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthResponse) ProtoMessage() {}

func (x *HealthResponse) ProtoReflect() protoreflect.Message {
	mi := &file_chrono_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthResponse.ProtoReflect.Descriptor instead.
func (*HealthResponse) Descriptor() ([]byte, []int) {
	return file_chrono_proto_rawDescGZIP(), []int{12}
}

func (x *HealthResponse) GetStatus() HealthResponse_Status {
	if x != nil {
		return x.Status
	}
	return HealthResponse_SERVING
}

func (x *HealthResponse) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

var File_chrono_proto protoreflect.FileDescriptor

var file_chrono_proto_rawDesc = []byte{
	0x0a, 0x0c, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x06,
	0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x22, 0x77, 0x0a, 0x04, 0x44, 0x61, 0x74, 0x65, 0x12, 0x10,
	0x0a, 0x03, 0x64, 0x61, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x03, 0x64, 0x61, 0x79,
	0x12, 0x14, 0x0a, 0x05, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52,
	0x05, 0x6d, 0x6f, 0x6e, 0x74, 0x68, 0x12, 0x12, 0x0a, 0x04, 0x79, 0x65, 0x61, 0x72, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x79, 0x65, 0x61, 0x72, 0x12, 0x18, 0x0a, 0x07, 0x77, 0x65,
	0x65, 0x6b, 0x64, 0x61, 0x79, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x77, 0x65, 0x65,
	0x6b, 0x64, 0x61, 0x79, 0x12, 0x19, 0x0a, 0x08, 0x79, 0x65, 0x61, 0x72, 0x5f, 0x64, 0x61, 0x79,
	0x18, 0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x79, 0x65, 0x61, 0x72, 0x44, 0x61, 0x79, 0x22,
	0x55, 0x0a, 0x09, 0x54, 0x69, 0x6d, 0x65, 0x4f, 0x66, 0x44, 0x61, 0x79, 0x12, 0x14, 0x0a, 0x05,
	0x68, 0x6f, 0x75, 0x72, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x05, 0x68, 0x6f, 0x75,
	0x72, 0x73, 0x12, 0x18, 0x0a, 0x07, 0x6d, 0x69, 0x6e, 0x75, 0x74, 0x65, 0x73, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x07, 0x6d, 0x69, 0x6e, 0x75, 0x74, 0x65, 0x73, 0x12, 0x18, 0x0a, 0x07,
	0x73, 0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x73,
	0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73, 0x22, 0x53, 0x0a, 0x08, 0x44, 0x61, 0x74, 0x65, 0x54, 0x69,
	0x6d, 0x65, 0x12, 0x20, 0x0a, 0x04, 0x64, 0x61, 0x74, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x0c, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x44, 0x61, 0x74, 0x65, 0x52, 0x04,
	0x64, 0x61, 0x74, 0x65, 0x12, 0x25, 0x0a, 0x04, 0x74, 0x69, 0x6d, 0x65, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x0b, 0x32, 0x11, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x54, 0x69, 0x6d, 0x65,
	0x4f, 0x66, 0x44, 0x61, 0x79, 0x52, 0x04, 0x74, 0x69, 0x6d, 0x65, 0x22, 0x48, 0x0a, 0x0a, 0x4e,
	0x6f, 0x77, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x63, 0x6c, 0x69,
	0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x6c,
	0x69, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x72, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x49, 0x64, 0x22, 0xc6, 0x01, 0x0a, 0x0b, 0x4e, 0x6f, 0x77, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x32, 0x0a, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1a, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x4e,
	0x6f, 0x77, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x2e, 0x53, 0x74, 0x61, 0x74, 0x75,
	0x73, 0x52, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x23, 0x0a, 0x0d, 0x65, 0x72, 0x72,
	0x6f, 0x72, 0x5f, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x0c, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x4d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x12, 0x22,
	0x0a, 0x03, 0x6e, 0x6f, 0x77, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x10, 0x2e, 0x63, 0x68,
	0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x44, 0x61, 0x74, 0x65, 0x54, 0x69, 0x6d, 0x65, 0x52, 0x03, 0x6e,
	0x6f, 0x77, 0x12, 0x18, 0x0a, 0x07, 0x64, 0x69, 0x73, 0x70, 0x6c, 0x61, 0x79, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x07, 0x64, 0x69, 0x73, 0x70, 0x6c, 0x61, 0x79, 0x22, 0x20, 0x0a, 0x06,
	0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x0b, 0x0a, 0x07, 0x53, 0x55, 0x43, 0x43, 0x45, 0x53,
	0x53, 0x10, 0x00, 0x12, 0x09, 0x0a, 0x05, 0x45, 0x52, 0x52, 0x4f, 0x52, 0x10, 0x01, 0x22, 0xb9,
	0x01, 0x0a, 0x10, 0x53, 0x68, 0x69, 0x66, 0x74, 0x44, 0x61, 0x79, 0x73, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x24, 0x0a, 0x04, 0x62, 0x61, 0x73, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x10, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x44, 0x61, 0x74, 0x65, 0x54,
	0x69, 0x6d, 0x65, 0x52, 0x04, 0x62, 0x61, 0x73, 0x65, 0x12, 0x12, 0x0a, 0x04, 0x64, 0x61, 0x79,
	0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x04, 0x52, 0x04, 0x64, 0x61, 0x79, 0x73, 0x12, 0x2f, 0x0a,
	0x09, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0e,
	0x32, 0x11, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x44, 0x69, 0x72, 0x65, 0x63, 0x74,
	0x69, 0x6f, 0x6e, 0x52, 0x09, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x1b,
	0x0a, 0x09, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x08, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x72,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x09, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x49, 0x64, 0x22, 0xd8, 0x01, 0x0a, 0x11, 0x53,
	0x68, 0x69, 0x66, 0x74, 0x44, 0x61, 0x79, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x38, 0x0a, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0e,
	0x32, 0x20, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x53, 0x68, 0x69, 0x66, 0x74, 0x44,
	0x61, 0x79, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x2e, 0x53, 0x74, 0x61, 0x74,
	0x75, 0x73, 0x52, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x23, 0x0a, 0x0d, 0x65, 0x72,
	0x72, 0x6f, 0x72, 0x5f, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0c, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x4d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x12,
	0x28, 0x0a, 0x06, 0x72, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x10, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x44, 0x61, 0x74, 0x65, 0x54, 0x69, 0x6d,
	0x65, 0x52, 0x06, 0x72, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x64, 0x69, 0x73,
	0x70, 0x6c, 0x61, 0x79, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x64, 0x69, 0x73, 0x70,
	0x6c, 0x61, 0x79, 0x22, 0x20, 0x0a, 0x06, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x0b, 0x0a,
	0x07, 0x53, 0x55, 0x43, 0x43, 0x45, 0x53, 0x53, 0x10, 0x00, 0x12, 0x09, 0x0a, 0x05, 0x45, 0x52,
	0x52, 0x4f, 0x52, 0x10, 0x01, 0x22, 0xc2, 0x01, 0x0a, 0x13, 0x53, 0x68, 0x69, 0x66, 0x74, 0x53,
	0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x24, 0x0a,
	0x04, 0x62, 0x61, 0x73, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x10, 0x2e, 0x63, 0x68,
	0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x44, 0x61, 0x74, 0x65, 0x54, 0x69, 0x6d, 0x65, 0x52, 0x04, 0x62,
	0x61, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x04, 0x52, 0x07, 0x73, 0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73, 0x12, 0x2f, 0x0a,
	0x09, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0e,
	0x32, 0x11, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x44, 0x69, 0x72, 0x65, 0x63, 0x74,
	0x69, 0x6f, 0x6e, 0x52, 0x09, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x1b,
	0x0a, 0x09, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x08, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x72,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x09, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x49, 0x64, 0x22, 0xde, 0x01, 0x0a, 0x14, 0x53,
	0x68, 0x69, 0x66, 0x74, 0x53, 0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x3b, 0x0a, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x0e, 0x32, 0x23, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x53, 0x68, 0x69,
	0x66, 0x74, 0x53, 0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x2e, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73,
	0x12, 0x23, 0x0a, 0x0d, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x5f, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67,
	0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x4d, 0x65,
	0x73, 0x73, 0x61, 0x67, 0x65, 0x12, 0x28, 0x0a, 0x06, 0x72, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x10, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x44,
	0x61, 0x74, 0x65, 0x54, 0x69, 0x6d, 0x65, 0x52, 0x06, 0x72, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x12,
	0x18, 0x0a, 0x07, 0x64, 0x69, 0x73, 0x70, 0x6c, 0x61, 0x79, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x07, 0x64, 0x69, 0x73, 0x70, 0x6c, 0x61, 0x79, 0x22, 0x20, 0x0a, 0x06, 0x53, 0x74, 0x61,
	0x74, 0x75, 0x73, 0x12, 0x0b, 0x0a, 0x07, 0x53, 0x55, 0x43, 0x43, 0x45, 0x53, 0x53, 0x10, 0x00,
	0x12, 0x09, 0x0a, 0x05, 0x45, 0x52, 0x52, 0x4f, 0x52, 0x10, 0x01, 0x22, 0x8c, 0x01, 0x0a, 0x0e,
	0x43, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1e,
	0x0a, 0x01, 0x61, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x10, 0x2e, 0x63, 0x68, 0x72, 0x6f,
	0x6e, 0x6f, 0x2e, 0x44, 0x61, 0x74, 0x65, 0x54, 0x69, 0x6d, 0x65, 0x52, 0x01, 0x61, 0x12, 0x1e,
	0x0a, 0x01, 0x62, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x10, 0x2e, 0x63, 0x68, 0x72, 0x6f,
	0x6e, 0x6f, 0x2e, 0x44, 0x61, 0x74, 0x65, 0x54, 0x69, 0x6d, 0x65, 0x52, 0x01, 0x62, 0x12, 0x1b,
	0x0a, 0x09, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x08, 0x63, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x72,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x09, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x49, 0x64, 0x22, 0xfc, 0x01, 0x0a, 0x0f, 0x43,
	0x6f, 0x6d, 0x70, 0x61, 0x72, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x36,
	0x0a, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1e,
	0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x65, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x2e, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x06,
	0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x23, 0x0a, 0x0d, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x5f,
	0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x65,
	0x72, 0x72, 0x6f, 0x72, 0x4d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x12, 0x3c, 0x0a, 0x08, 0x6f,
	0x72, 0x64, 0x65, 0x72, 0x69, 0x6e, 0x67, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x20, 0x2e,
	0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x65, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x2e, 0x4f, 0x72, 0x64, 0x65, 0x72, 0x69, 0x6e, 0x67, 0x52,
	0x08, 0x6f, 0x72, 0x64, 0x65, 0x72, 0x69, 0x6e, 0x67, 0x22, 0x20, 0x0a, 0x06, 0x53, 0x74, 0x61,
	0x74, 0x75, 0x73, 0x12, 0x0b, 0x0a, 0x07, 0x53, 0x55, 0x43, 0x43, 0x45, 0x53, 0x53, 0x10, 0x00,
	0x12, 0x09, 0x0a, 0x05, 0x45, 0x52, 0x52, 0x4f, 0x52, 0x10, 0x01, 0x22, 0x2c, 0x0a, 0x08, 0x4f,
	0x72, 0x64, 0x65, 0x72, 0x69, 0x6e, 0x67, 0x12, 0x09, 0x0a, 0x05, 0x45, 0x51, 0x55, 0x41, 0x4c,
	0x10, 0x00, 0x12, 0x0a, 0x0a, 0x06, 0x42, 0x45, 0x46, 0x4f, 0x52, 0x45, 0x10, 0x01, 0x12, 0x09,
	0x0a, 0x05, 0x41, 0x46, 0x54, 0x45, 0x52, 0x10, 0x02, 0x22, 0x2c, 0x0a, 0x0d, 0x48, 0x65, 0x61,
	0x6c, 0x74, 0x68, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x63, 0x6c,
	0x69, 0x65, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63,
	0x6c, 0x69, 0x65, 0x6e, 0x74, 0x49, 0x64, 0x22, 0x8e, 0x01, 0x0a, 0x0e, 0x48, 0x65, 0x61, 0x6c,
	0x74, 0x68, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x35, 0x0a, 0x06, 0x73, 0x74,
	0x61, 0x74, 0x75, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1d, 0x2e, 0x63, 0x68, 0x72,
	0x6f, 0x6e, 0x6f, 0x2e, 0x48, 0x65, 0x61, 0x6c, 0x74, 0x68, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x2e, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75,
	0x73, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x5f, 0x69, 0x64, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x49, 0x64,
	0x22, 0x26, 0x0a, 0x06, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x0b, 0x0a, 0x07, 0x53, 0x45,
	0x52, 0x56, 0x49, 0x4e, 0x47, 0x10, 0x00, 0x12, 0x0f, 0x0a, 0x0b, 0x4e, 0x4f, 0x54, 0x5f, 0x53,
	0x45, 0x52, 0x56, 0x49, 0x4e, 0x47, 0x10, 0x01, 0x2a, 0x26, 0x0a, 0x09, 0x44, 0x69, 0x72, 0x65,
	0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x0b, 0x0a, 0x07, 0x46, 0x4f, 0x52, 0x57, 0x41, 0x52, 0x44,
	0x10, 0x00, 0x12, 0x0c, 0x0a, 0x08, 0x42, 0x41, 0x43, 0x4b, 0x57, 0x41, 0x52, 0x44, 0x10, 0x01,
	0x32, 0xba, 0x02, 0x0a, 0x06, 0x43, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x12, 0x2e, 0x0a, 0x03, 0x4e,
	0x6f, 0x77, 0x12, 0x12, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x4e, 0x6f, 0x77, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x13, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e,
	0x4e, 0x6f, 0x77, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x40, 0x0a, 0x09, 0x53,
	0x68, 0x69, 0x66, 0x74, 0x44, 0x61, 0x79, 0x73, 0x12, 0x18, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e,
	0x6f, 0x2e, 0x53, 0x68, 0x69, 0x66, 0x74, 0x44, 0x61, 0x79, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x19, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x53, 0x68, 0x69, 0x66,
	0x74, 0x44, 0x61, 0x79, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x49, 0x0a,
	0x0c, 0x53, 0x68, 0x69, 0x66, 0x74, 0x53, 0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73, 0x12, 0x1b, 0x2e,
	0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x53, 0x68, 0x69, 0x66, 0x74, 0x53, 0x65, 0x63, 0x6f,
	0x6e, 0x64, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1c, 0x2e, 0x63, 0x68, 0x72,
	0x6f, 0x6e, 0x6f, 0x2e, 0x53, 0x68, 0x69, 0x66, 0x74, 0x53, 0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3a, 0x0a, 0x07, 0x43, 0x6f, 0x6d, 0x70,
	0x61, 0x72, 0x65, 0x12, 0x16, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x43, 0x6f, 0x6d,
	0x70, 0x61, 0x72, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x17, 0x2e, 0x63, 0x68,
	0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x65, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x37, 0x0a, 0x06, 0x48, 0x65, 0x61, 0x6c, 0x74, 0x68, 0x12, 0x15,
	0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x48, 0x65, 0x61, 0x6c, 0x74, 0x68, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x16, 0x2e, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2e, 0x48,
	0x65, 0x61, 0x6c, 0x74, 0x68, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x22, 0x5a,
	0x20, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x2f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x6e, 0x61, 0x6c,
	0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x61, 0x70, 0x69, 0x3b, 0x63, 0x68, 0x72, 0x6f, 0x6e, 0x6f, 0x70,
	0x62, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_chrono_proto_rawDescOnce sync.Once
	file_chrono_proto_rawDescData = file_chrono_proto_rawDesc
)

func file_chrono_proto_rawDescGZIP() []byte {
	file_chrono_proto_rawDescOnce.Do(func() {
		file_chrono_proto_rawDescData = protoimpl.X.CompressGZIP(file_chrono_proto_rawDescData)
	})
	return file_chrono_proto_rawDescData
}

var file_chrono_proto_enumTypes = make([]protoimpl.EnumInfo, 7)
var file_chrono_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_chrono_proto_goTypes = []any{
	(Direction)(0),                   // 0: chrono.Direction
	(NowResponse_Status)(0),          // 1: chrono.NowResponse.Status
	(ShiftDaysResponse_Status)(0),    // 2: chrono.ShiftDaysResponse.Status
	(ShiftSecondsResponse_Status)(0), // 3: chrono.ShiftSecondsResponse.Status
	(CompareResponse_Status)(0),      // 4: chrono.CompareResponse.Status
	(CompareResponse_Ordering)(0),    // 5: chrono.CompareResponse.Ordering
	(HealthResponse_Status)(0),       // 6: chrono.HealthResponse.Status
	(*Date)(nil),                     // 7: chrono.Date
	(*TimeOfDay)(nil),                // 8: chrono.TimeOfDay
	(*DateTime)(nil),                 // 9: chrono.DateTime
	(*NowRequest)(nil),               // 10: chrono.NowRequest
	(*NowResponse)(nil),              // 11: chrono.NowResponse
	(*ShiftDaysRequest)(nil),         // 12: chrono.ShiftDaysRequest
	(*ShiftDaysResponse)(nil),        // 13: chrono.ShiftDaysResponse
	(*ShiftSecondsRequest)(nil),      // 14: chrono.ShiftSecondsRequest
	(*ShiftSecondsResponse)(nil),     // 15: chrono.ShiftSecondsResponse
	(*CompareRequest)(nil),           // 16: chrono.CompareRequest
	(*CompareResponse)(nil),          // 17: chrono.CompareResponse
	(*HealthRequest)(nil),            // 18: chrono.HealthRequest
	(*HealthResponse)(nil),           // 19: chrono.HealthResponse
}
var file_chrono_proto_depIdxs = []int32{
	7,  // 0: chrono.DateTime.date:type_name -> chrono.Date
	8,  // 1: chrono.DateTime.time:type_name -> chrono.TimeOfDay
	1,  // 2: chrono.NowResponse.status:type_name -> chrono.NowResponse.Status
	9,  // 3: chrono.NowResponse.now:type_name -> chrono.DateTime
	9,  // 4: chrono.ShiftDaysRequest.base:type_name -> chrono.DateTime
	0,  // 5: chrono.ShiftDaysRequest.direction:type_name -> chrono.Direction
	2,  // 6: chrono.ShiftDaysResponse.status:type_name -> chrono.ShiftDaysResponse.Status
	9,  // 7: chrono.ShiftDaysResponse.result:type_name -> chrono.DateTime
	9,  // 8: chrono.ShiftSecondsRequest.base:type_name -> chrono.DateTime
	0,  // 9: chrono.ShiftSecondsRequest.direction:type_name -> chrono.Direction
	3,  // 10: chrono.ShiftSecondsResponse.status:type_name -> chrono.ShiftSecondsResponse.Status
	9,  // 11: chrono.ShiftSecondsResponse.result:type_name -> chrono.DateTime
	9,  // 12: chrono.CompareRequest.a:type_name -> chrono.DateTime
	9,  // 13: chrono.CompareRequest.b:type_name -> chrono.DateTime
	4,  // 14: chrono.CompareResponse.status:type_name -> chrono.CompareResponse.Status
	5,  // 15: chrono.CompareResponse.ordering:type_name -> chrono.CompareResponse.Ordering
	6,  // 16: chrono.HealthResponse.status:type_name -> chrono.HealthResponse.Status
	10, // 17: chrono.Chrono.Now:input_type -> chrono.NowRequest
	12, // 18: chrono.Chrono.ShiftDays:input_type -> chrono.ShiftDaysRequest
	14, // 19: chrono.Chrono.ShiftSeconds:input_type -> chrono.ShiftSecondsRequest
	16, // 20: chrono.Chrono.Compare:input_type -> chrono.CompareRequest
	18, // 21: chrono.Chrono.Health:input_type -> chrono.HealthRequest
	11, // 22: chrono.Chrono.Now:output_type -> chrono.NowResponse
	13, // 23: chrono.Chrono.ShiftDays:output_type -> chrono.ShiftDaysResponse
	15, // 24: chrono.Chrono.ShiftSeconds:output_type -> chrono.ShiftSecondsResponse
	17, // 25: chrono.Chrono.Compare:output_type -> chrono.CompareResponse
	19, // 26: chrono.Chrono.Health:output_type -> chrono.HealthResponse
	22, // [22:27] is the sub-list for method output_type
	17, // [17:22] is the sub-list for method input_type
	17, // [17:17] is the sub-list for extension type_name
	17, // [17:17] is the sub-list for extension extendee
	0,  // [0:17] is the sub-list for field type_name
}

func init() { file_chrono_proto_init() }
func file_chrono_proto_init() {
	if File_chrono_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_chrono_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*Date); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_chrono_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*TimeOfDay); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_chrono_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*DateTime); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_chrono_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*NowRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_chrono_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*NowResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_chrono_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*ShiftDaysRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_chrono_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*ShiftDaysResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_chrono_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*ShiftSecondsRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_chrono_proto_msgTypes[8].Exporter = func(v any, i int) any {
			switch v := v.(*ShiftSecondsResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_chrono_proto_msgTypes[9].Exporter = func(v any, i int) any {
			switch v := v.(*CompareRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_chrono_proto_msgTypes[10].Exporter = func(v any, i int) any {
			switch v := v.(*CompareResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_chrono_proto_msgTypes[11].Exporter = func(v any, i int) any {
			switch v := v.(*HealthRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_chrono_proto_msgTypes[12].Exporter = func(v any, i int) any {
			switch v := v.(*HealthResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_chrono_proto_rawDesc,
			NumEnums:      7,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_chrono_proto_goTypes,
		DependencyIndexes: file_chrono_proto_depIdxs,
		EnumInfos:         file_chrono_proto_enumTypes,
		MessageInfos:      file_chrono_proto_msgTypes,
	}.Build()
	File_chrono_proto = out.File
	file_chrono_proto_rawDesc = nil
	file_chrono_proto_goTypes = nil
	file_chrono_proto_depIdxs = nil
}
