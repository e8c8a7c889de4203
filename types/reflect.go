// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

var typeOfError = reflect.TypeOf((*error)(nil)).Elem()

// Is this an exported - upper case - name?
func isExported(name string) bool {
	rune, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(rune)
}

// ListMethod 列出所有导出的方法
func ListMethod(action interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(action)
	return ListMethodByType(typ)
}

// ListMethodByType 列出类型的导出方法
func ListMethodByType(typ reflect.Type) map[string]reflect.Method {
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		mname := method.Name
		// Method must be exported.
		if method.PkgPath != "" || !isExported(mname) {
			continue
		}
		methods[mname] = method
	}
	return methods
}

// ListPrefixMethod 列出带有前缀的方法, 返回的key去掉了前缀
// 比如 Exec_Bet -> Bet
func ListPrefixMethod(action interface{}, prefix string) map[string]reflect.Method {
	methods := make(map[string]reflect.Method)
	for name, m := range ListMethod(action) {
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
			methods[name[len(prefix):]] = m
		}
	}
	return methods
}

// IsOK 检查返回值个数以及是否都可以取出来
func IsOK(list []reflect.Value, n int) bool {
	if len(list) != n {
		return false
	}
	for i := 0; i < len(list); i++ {
		if !IsNilVal(list[i]) && !list[i].CanInterface() {
			return false
		}
	}
	return true
}

// IsNilVal 空值判断, 对不能为 nil 的类型返回 false
func IsNilVal(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// CallMethod 调用 (rcvr).method(args...) (T, error) 形式的方法
func CallMethod(rcvr interface{}, method reflect.Method, args ...interface{}) (interface{}, error) {
	in := []reflect.Value{reflect.ValueOf(rcvr)}
	for _, arg := range args {
		in = append(in, reflect.ValueOf(arg))
	}
	mtype := method.Type
	if mtype.NumIn() != len(in) || mtype.NumOut() != 2 || mtype.Out(1) != typeOfError {
		return nil, ErrActionNotSupport
	}
	for i := 1; i < len(in); i++ {
		if !in[i].Type().AssignableTo(mtype.In(i)) {
			return nil, ErrInvalidParam
		}
	}
	out := method.Func.Call(in)
	if !IsOK(out, 2) {
		return nil, ErrActionNotSupport
	}
	var err error
	if !IsNilVal(out[1]) {
		err = out[1].Interface().(error)
	}
	if IsNilVal(out[0]) {
		return nil, err
	}
	return out[0].Interface(), err
}
