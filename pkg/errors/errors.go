// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// カーネル代数の失敗モード（未実装の評価、形状不一致、不正なオペランド）を
// 構造化されたエラー情報として表現します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("tinygp-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、NumericalWarningなどのカスタム警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	// zerologが設定されている場合は優先的に使用
	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	// フォールバック: 従来のハンドラ
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// NumericalWarning は計算結果にNaN/Infが含まれていた場合に発生する警告です。
// カーネルの数値的な定義域エラー（負の基数の非整数乗など）はエラーではなく
// NaNとして伝播するため、バッチ評価の呼び出し側はこの警告で検知します。
type NumericalWarning struct {
	Op      string // 発生した操作（例: "gp.Covariance"）
	Count   int    // NaN/Infの個数
	Entries int    // 出力の総要素数
}

func (w *NumericalWarning) Error() string {
	return fmt.Sprintf("%s produced %d non-finite entries out of %d. Treat them as a data-quality signal.",
		w.Op, w.Count, w.Entries)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *NumericalWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Int("count", w.Count).
		Int("entries", w.Entries).
		Str("type", "NumericalWarning")
}

// NewNumericalWarning は新しいNumericalWarningを作成します。
func NewNumericalWarning(op string, count, entries int) *NumericalWarning {
	return &NumericalWarning{Op: op, Count: count, Entries: entries}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// NotImplementedError は抽象基底の `Evaluate` を直接呼び出した場合のエラーです。
// ユーザー定義カーネルが Evaluate をオーバーライドし忘れたことを示します。
type NotImplementedError struct {
	Kernel string
	Method string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("tinygp: %s: %s is not implemented. Concrete kernels must override it", e.Kernel, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotImplementedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("kernel", e.Kernel).
		Str("method", e.Method).
		Str("type", "NotImplementedError")
}

// NewNotImplementedError は新しいNotImplementedErrorを作成し、スタックトレースを付与します。
func NewNotImplementedError(kernel, method string) error {
	err := &NotImplementedError{Kernel: kernel, Method: method}
	return errors.WithStack(err)
}

// ShapeMismatchError は入力点の次元とカーネルのパラメータ（あるいは相手の点）の
// 次元が一致しない場合のエラーです。検証は構築時ではなく評価時に行われます。
type ShapeMismatchError struct {
	Op       string
	Expected int
	Got      int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("tinygp: %s: shape mismatch. Expected %d components, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ShapeMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "ShapeMismatchError")
}

// NewShapeMismatchError は新しいShapeMismatchErrorを作成し、スタックトレースを付与します。
func NewShapeMismatchError(op string, expected, got int) error {
	err := &ShapeMismatchError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// UnsupportedOperandError はカーネル合成（Add/Mul）やメトリックの解決に、
// カーネルでも数値でもないオペランドが渡された場合のエラーです。
// 評価時まで遅延させず、合成時に直ちに報告されます。
type UnsupportedOperandError struct {
	Op      string
	Operand interface{}
}

func (e *UnsupportedOperandError) Error() string {
	return fmt.Sprintf("tinygp: %s: unsupported operand type %T (want Kernel or numeric value)", e.Op, e.Operand)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *UnsupportedOperandError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("operand_type", fmt.Sprintf("%T", e.Operand)).
		Str("type", "UnsupportedOperandError")
}

// NewUnsupportedOperandError は新しいUnsupportedOperandErrorを作成し、スタックトレースを付与します。
func NewUnsupportedOperandError(op string, operand interface{}) error {
	err := &UnsupportedOperandError{Op: op, Operand: operand}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tinygp: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("tinygp: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrNotImplemented は機能が未実装の場合のエラーです。
	ErrNotImplemented = New("not implemented")

	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
